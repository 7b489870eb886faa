package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// CategoryTag is one storefront catalog bucket.
type CategoryTag string

const (
	TagGloves        CategoryTag = "gloves"
	TagHeat          CategoryTag = "heat"
	TagMechanical    CategoryTag = "mechanical"
	TagWelding       CategoryTag = "welding"
	TagArmProtection CategoryTag = "arm-protection"
	TagRespiratory   CategoryTag = "respiratory"
	TagSwabs         CategoryTag = "swabs"
	TagFootwear      CategoryTag = "footwear"
	TagEyeFace       CategoryTag = "eye-face"
	TagHearing       CategoryTag = "hearing"
	TagHead          CategoryTag = "head"
	TagClothing      CategoryTag = "clothing"
)

// tagNeedles maps each bucket to the substrings that identify it in the
// canonical category/sub-category text. Matching is case-insensitive.
var tagNeedles = map[CategoryTag][]string{
	TagGloves:        {"glove"},
	TagHeat:          {"heat", "thermal"},
	TagMechanical:    {"mechanical", "cut resist"},
	TagWelding:       {"weld"},
	TagArmProtection: {"sleeve"},
	TagRespiratory:   {"respir", "mask"},
	TagSwabs:         {"swab"},
	TagFootwear:      {"footwear", "boot", "insole"},
	TagEyeFace:       {"eye", "face", "glasses", "goggle", "visor"},
	TagHearing:       {"hearing", "earmuff", "earplug"},
	TagHead:          {"helmet", "bump"},
	TagClothing:      {"clothing", "jacket", "workwear"},
}

// tagWords are needles that false-positive as bare substrings ("ear" is in
// "workwear", "arm" is in "pharma"), so they only match as whole words.
var tagWords = map[CategoryTag][]string{
	TagArmProtection: {"arm"},
	TagHearing:       {"ear"},
	TagHead:          {"head"},
}

// classifyOrder keeps Classify output deterministic.
var classifyOrder = []CategoryTag{
	TagGloves, TagHeat, TagMechanical, TagWelding, TagArmProtection,
	TagRespiratory, TagSwabs, TagFootwear, TagEyeFace, TagHearing,
	TagHead, TagClothing,
}

func containsWord(haystack, word string) bool {
	for rest := haystack; ; {
		i := strings.Index(rest, word)
		if i < 0 {
			return false
		}
		before := i == 0 || !isLetter(rest[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(rest) || !isLetter(rest[afterIdx])
		if before && after {
			return true
		}
		rest = rest[i+1:]
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func matchesTag(haystack string, tag CategoryTag) bool {
	for _, needle := range tagNeedles[tag] {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	for _, word := range tagWords[tag] {
		if containsWord(haystack, word) {
			return true
		}
	}
	return false
}

// Classify maps a product to zero or more catalog buckets by substring
// heuristics over its canonical category and sub-category. Data-shape
// irregularities degrade to "no tags", never an error.
func Classify(p models.Product) []CategoryTag {
	haystack := strings.ToLower(p.Category + " " + p.SubCategory)

	tags := make([]CategoryTag, 0, 2)
	for _, tag := range classifyOrder {
		if matchesTag(haystack, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CategoryStats is the published-count-by-category rollup.
type CategoryStats struct {
	TotalPublished int
	Counts         map[CategoryTag]int
	// Unclassified counts published products that matched no bucket at
	// all. They still land in the residual gloves figure, but getting
	// here usually means the category text needs fixing.
	Unclassified int
}

// ComputeCategoryStats classifies every published product into the
// mutually-exclusive summary. Gloves is the residual bucket: a product
// matching any non-glove tag is excluded from it, and the gloves count is
// total published minus the number of unique products matching any other
// bucket. The subtraction uses the union of product IDs, not per-bucket
// sums, so a product matching two non-glove buckets is removed once.
func ComputeCategoryStats(products []models.Product) CategoryStats {
	stats := CategoryStats{Counts: make(map[CategoryTag]int)}
	nonGlove := make(map[uuid.UUID]struct{})

	for _, p := range products {
		if !p.Published {
			continue
		}
		stats.TotalPublished++

		tags := Classify(p)
		if len(tags) == 0 {
			stats.Unclassified++
			continue
		}
		for _, tag := range tags {
			if tag == TagGloves {
				continue
			}
			stats.Counts[tag]++
			nonGlove[p.ID] = struct{}{}
		}
	}

	stats.Counts[TagGloves] = stats.TotalPublished - len(nonGlove)
	return stats
}
