package catalog_cache

import (
	"sync"
	"time"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

const TTL = 5 * time.Minute

// ── Published products snapshot ──────────────────────────────────────────────
// One page load fetches the collection once; facet derivation and predicate
// evaluation both read from this.

type productEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	productMu    sync.RWMutex
	productCache *productEntry
)

func GetProducts() ([]models.Product, bool) {
	productMu.RLock()
	defer productMu.RUnlock()
	if productCache != nil && time.Since(productCache.fetchedAt) < TTL {
		return productCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	productMu.Lock()
	defer productMu.Unlock()
	productCache = &productEntry{products: products, fetchedAt: time.Now()}
}

// ── Published articles snapshot ──────────────────────────────────────────────

type articleEntry struct {
	articles  []models.Article
	fetchedAt time.Time
}

var (
	articleMu    sync.RWMutex
	articleCache *articleEntry
)

func GetArticles() ([]models.Article, bool) {
	articleMu.RLock()
	defer articleMu.RUnlock()
	if articleCache != nil && time.Since(articleCache.fetchedAt) < TTL {
		return articleCache.articles, true
	}
	return nil, false
}

func SetArticles(articles []models.Article) {
	articleMu.Lock()
	defer articleMu.Unlock()
	articleCache = &articleEntry{articles: articles, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any catalog publish/unpublish) ────────────

func Invalidate() {
	productMu.Lock()
	productCache = nil
	productMu.Unlock()

	articleMu.Lock()
	articleCache = nil
	articleMu.Unlock()
}
