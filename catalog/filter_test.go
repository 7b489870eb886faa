package catalog

import (
	"testing"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

func boolPtr(v bool) *bool { return &v }

func TestFilterConjunctionAcrossDimensions(t *testing.T) {
	p := armProduct(45, "velcro")

	sel := Selection{
		Lengths:  []string{"30 cm", "45 cm"},
		Closures: []string{"velcro"},
	}
	if got := Filter([]models.Product{p}, sel, "en"); len(got) != 1 {
		t.Fatalf("expected match for 45 cm velcro, got %d results", len(got))
	}

	// Same product, closure constraint changed: AND across dimensions rejects.
	sel.Closures = []string{"snap"}
	if got := Filter([]models.Product{p}, sel, "en"); len(got) != 0 {
		t.Fatalf("expected no match once closure is snap, got %d results", len(got))
	}

	// OR within the length dimension admits either selected value.
	sel = Selection{Lengths: []string{"30 cm", "45 cm"}}
	if got := Filter([]models.Product{armProduct(30, "snap")}, sel, "en"); len(got) != 1 {
		t.Fatalf("expected 30 cm product to pass the multi-select, got %d results", len(got))
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	a := armProduct(30, "velcro")
	a.Name = "A"
	b := armProduct(45, "snap")
	b.Name = "B"
	c := armProduct(30, "elastic")
	c.Name = "C"

	got := Filter([]models.Product{a, b, c}, Selection{Lengths: []string{"30 cm"}}, "en")
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		names := make([]string, len(got))
		for i, p := range got {
			names[i] = p.Name
		}
		t.Errorf("expected [A C], got %v", names)
	}
}

func TestFilterAbsentAttributeFailsActiveDimension(t *testing.T) {
	// No arm attributes at all: an active length filter must reject it.
	bare := models.Product{Category: "General gloves"}

	if got := Filter([]models.Product{bare}, Selection{Lengths: []string{"30 cm"}}, "en"); len(got) != 0 {
		t.Errorf("product without a length passed an active length filter")
	}
	if got := Filter([]models.Product{bare}, Selection{Closures: []string{"velcro"}}, "en"); len(got) != 0 {
		t.Errorf("product without a closure passed an active closure filter")
	}
}

func TestFilterThumbLoopToggle(t *testing.T) {
	with := armProduct(30, "velcro")
	with.Attributes.Arm.ThumbLoop = boolPtr(true)
	without := armProduct(30, "velcro")
	without.Attributes.Arm.ThumbLoop = boolPtr(false)
	unset := armProduct(30, "velcro")

	// Unset toggle constrains nothing.
	got := Filter([]models.Product{with, without, unset}, Selection{}, "en")
	if len(got) != 3 {
		t.Fatalf("empty selection filtered products: %d of 3", len(got))
	}

	// Active toggle requires the attribute to be present and equal.
	got = Filter([]models.Product{with, without, unset}, Selection{ThumbLoop: boolPtr(true)}, "en")
	if len(got) != 1 || got[0].Attributes.Arm.ThumbLoop == nil || !*got[0].Attributes.Arm.ThumbLoop {
		t.Errorf("thumb loop toggle admitted %d products, want 1", len(got))
	}
}

func TestFilterLocaleAwareValues(t *testing.T) {
	p := armProduct(30, "velcro")
	p.Attributes.Arm.ClosureLocales = models.LocaleMap{"en": "velcro", "it": "strappo"}

	// The selection is built from it-locale facet options, so the filter
	// must resolve with the same locale.
	got := Filter([]models.Product{p}, Selection{Closures: []string{"strappo"}}, "it")
	if len(got) != 1 {
		t.Errorf("it-locale closure selection did not match")
	}

	got = Filter([]models.Product{p}, Selection{Closures: []string{"strappo"}}, "en")
	if len(got) != 0 {
		t.Errorf("it-locale option matched under en resolution")
	}
}

func TestFilterListValuedDimensions(t *testing.T) {
	p := models.Product{
		Category:   "General gloves",
		Industries: models.LocaleListMap{"en": {"Automotive", "Foundry"}},
		Attributes: models.KindAttributes{
			Kind:  models.KindGlove,
			Glove: &models.GloveRatings{Standards: []string{"EN388"}},
		},
	}

	sel := Selection{Industries: []string{"Foundry"}, Standards: []string{"EN388", "EN407"}}
	if got := Filter([]models.Product{p}, sel, "en"); len(got) != 1 {
		t.Errorf("list-valued dimensions did not match")
	}

	sel = Selection{Industries: []string{"Marine"}}
	if got := Filter([]models.Product{p}, sel, "en"); len(got) != 0 {
		t.Errorf("non-overlapping industry selection matched")
	}
}
