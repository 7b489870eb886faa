package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/HandLine-Safety/handline-catalog-backend/config"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

const pgTrgmDDL = `CREATE EXTENSION IF NOT EXISTS pg_trgm`

// searchSiteDDL installs the ranking function the search store calls.
// pg_trgm similarity scores every published entity against its localised
// title and summary; rows below min_similarity never leave the function.
const searchSiteDDL = `
CREATE OR REPLACE FUNCTION search_site(
	search_query text,
	content_filter text[],
	category_filter text,
	locale_preference text,
	min_similarity double precision
) RETURNS TABLE (
	id text,
	title text,
	description text,
	content_type text,
	url text,
	image_url text,
	score double precision,
	published_at timestamptz
) AS $fn$
	WITH entries AS (
		SELECT p.id::text AS id,
		       p.name AS title,
		       COALESCE(
		           NULLIF(p.short_description_locales->>locale_preference, ''),
		           NULLIF(p.short_description_locales->>'en', ''),
		           p.short_description
		       ) AS description,
		       'product'::text AS content_type,
		       '/products/' || p.slug AS url,
		       NULLIF(p.image_url, '') AS image_url,
		       COALESCE(
		           NULLIF(p.category_locales->>locale_preference, ''),
		           NULLIF(p.category_locales->>'en', ''),
		           p.category
		       ) AS category_text,
		       p.created_at AS published_at
		FROM products p
		WHERE p.published

		UNION ALL

		SELECT a.id::text,
		       COALESCE(
		           NULLIF(a.title_locales->>locale_preference, ''),
		           NULLIF(a.title_locales->>'en', ''),
		           a.title
		       ),
		       COALESCE(
		           NULLIF(a.summary_locales->>locale_preference, ''),
		           NULLIF(a.summary_locales->>'en', ''),
		           a.summary
		       ),
		       a.kind,
		       CASE a.kind WHEN 'case_study' THEN '/case-studies/' ELSE '/blog/' END || a.slug,
		       NULLIF(a.image_url, ''),
		       NULL,
		       a.published_at
		FROM articles a
		WHERE a.published
	)
	SELECT e.id, e.title, e.description, e.content_type, e.url, e.image_url,
	       GREATEST(
	           similarity(e.title, search_query),
	           similarity(COALESCE(e.description, ''), search_query)
	       ) AS score,
	       e.published_at
	FROM entries e
	WHERE (content_filter IS NULL OR e.content_type = ANY(content_filter))
	  AND (category_filter IS NULL OR e.category_text ILIKE '%' || category_filter || '%')
	  AND GREATEST(
	          similarity(e.title, search_query),
	          similarity(COALESCE(e.description, ''), search_query)
	      ) >= min_similarity
$fn$ LANGUAGE sql STABLE;
`

// main migrates the catalog schema, installs the search function and seeds
// a small bilingual demo catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("HANDLINE CATALOG - Demo Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.CatalogGorm.AutoMigrate(&models.Product{}, &models.Article{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	if err := config.CatalogGorm.Exec(pgTrgmDDL).Error; err != nil {
		log.Fatalf("Failed to install pg_trgm extension: %v", err)
	}
	if err := config.CatalogGorm.Exec(searchSiteDDL).Error; err != nil {
		log.Fatalf("Failed to install search_site function: %v", err)
	}
	log.Println("✓ search_site function installed")

	for _, p := range demoProducts() {
		if err := config.CatalogGorm.
			Where("slug = ?", p.Slug).
			FirstOrCreate(&p).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.Name, err)
		}
	}
	log.Println("✓ Demo products seeded")

	for _, a := range demoArticles() {
		if err := config.CatalogGorm.
			Where("slug = ?", a.Slug).
			FirstOrCreate(&a).Error; err != nil {
			log.Fatalf("Failed to seed article %q: %v", a.Title, err)
		}
	}
	log.Println("✓ Demo articles seeded")

	fmt.Println()
	fmt.Println("Done.")
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			Name:     "ThermoGrip 450",
			Slug:     "thermogrip-450",
			Category: "Heat resistant gloves",
			CategoryLocales: models.LocaleMap{
				"en": "Heat resistant gloves",
				"it": "Guanti resistenti al calore",
			},
			ShortDescription: "Heavy foundry glove rated for 450°C contact heat.",
			ShortDescriptionLocales: models.LocaleMap{
				"en": "Heavy foundry glove rated for 450°C contact heat.",
				"it": "Guanto da fonderia per calore da contatto fino a 450°C.",
			},
			Material:       "Aramid",
			MaterialLocale: models.LocaleMap{"en": "Aramid", "it": "Aramide"},
			Industries: models.LocaleListMap{
				"en": {"Foundry", "Steel"},
				"it": {"Fonderia", "Acciaio"},
			},
			Attributes: models.KindAttributes{
				Kind: models.KindGlove,
				Glove: &models.GloveRatings{
					EN388:     "3544",
					EN407:     "43XX4X",
					HeatLevel: "4",
					Standards: []string{"EN388", "EN407"},
				},
			},
			ImageURL:  "/images/products/thermogrip-450.jpg",
			Published: true,
		},
		{
			Name:     "ArcShield Sleeve 45",
			Slug:     "arcshield-sleeve-45",
			Category: "Arm protection",
			CategoryLocales: models.LocaleMap{
				"en": "Arm protection",
				"it": "Protezione braccia",
			},
			SubCategory: "Welding sleeves",
			SubCategoryLocales: models.LocaleMap{
				"en": "Welding sleeves",
				"it": "Maniche per saldatura",
			},
			ShortDescription: "45 cm welding sleeve with thumb loop and velcro closure.",
			Attributes: models.KindAttributes{
				Kind: models.KindArm,
				Arm: &models.ArmAttributes{
					LengthCM:       floatPtr(45),
					Closure:        "velcro",
					ClosureLocales: models.LocaleMap{"en": "velcro", "it": "strappo"},
					ThumbLoop:      boolPtr(true),
					Standards:      []string{"EN388", "EN ISO 11611"},
				},
			},
			ImageURL:  "/images/products/arcshield-sleeve-45.jpg",
			Published: true,
		},
		{
			Name:             "CleanSwab Pad L",
			Slug:             "cleanswab-pad-l",
			Category:         "Industrial swabs",
			CategoryLocales:  models.LocaleMap{"en": "Industrial swabs", "it": "Tamponi industriali"},
			ShortDescription: "Large absorbent pad for oil and chemical spills.",
			Size:             "L",
			SizeLocales:      models.LocaleMap{"en": "L"},
			Attributes: models.KindAttributes{
				Kind: models.KindEnvironment,
				Environment: &models.EnvironmentPictograms{
					Oil:      true,
					Wet:      true,
					Chemical: true,
				},
			},
			ImageURL:  "/images/products/cleanswab-pad-l.jpg",
			Published: true,
		},
		{
			Name:             "FlameWear Jacket",
			Slug:             "flamewear-jacket",
			Category:         "Protective clothing",
			CategoryLocales:  models.LocaleMap{"en": "Protective clothing", "it": "Abbigliamento protettivo"},
			SubCategory:      "Welding jackets",
			ShortDescription: "Flame retardant jacket for welding and grinding work.",
			Attributes: models.KindAttributes{
				Kind: models.KindClothing,
				Clothing: &models.ClothingStandards{
					Sizes:     []string{"S", "M", "L", "XL", "2XL"},
					Standards: []string{"EN ISO 11611", "EN ISO 11612"},
				},
			},
			ImageURL:  "/images/products/flamewear-jacket.jpg",
			Published: true,
		},
	}
}

func demoArticles() []models.Article {
	now := time.Now().UTC()
	return []models.Article{
		{
			Kind:  "blog",
			Slug:  "choosing-heat-resistant-gloves",
			Title: "Choosing heat resistant gloves",
			TitleLocales: models.LocaleMap{
				"en": "Choosing heat resistant gloves",
				"it": "Come scegliere guanti resistenti al calore",
			},
			Summary:     "What the EN407 rating digits actually mean on the shop floor.",
			Published:   true,
			PublishedAt: timePtr(now.AddDate(0, -2, 0)),
		},
		{
			Kind:        "case_study",
			Slug:        "foundry-heat-protection-rollout",
			Title:       "Foundry heat protection rollout",
			Summary:     "How a 400-person foundry cut hand injuries by half in a year.",
			Published:   true,
			PublishedAt: timePtr(now.AddDate(0, -1, -12)),
		},
	}
}
