package catalog

import (
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// Selection is the caller-owned filter state: the chosen option subset per
// multi-select dimension plus the scalar toggles. An empty slice or nil
// toggle means "no constraint on this dimension". The evaluator never
// mutates a Selection.
type Selection struct {
	Lengths       []string `json:"lengths,omitempty"`
	Closures      []string `json:"closures,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	ClothingSizes []string `json:"clothing_sizes,omitempty"`
	Materials     []string `json:"materials,omitempty"`
	Standards     []string `json:"standards,omitempty"`
	Industries    []string `json:"industries,omitempty"`
	Environments  []string `json:"environments,omitempty"`
	ThumbLoop     *bool    `json:"thumb_loop,omitempty"`
}

// IsEmpty reports whether no dimension is active.
func (s Selection) IsEmpty() bool {
	return len(s.Lengths) == 0 && len(s.Closures) == 0 && len(s.Sizes) == 0 &&
		len(s.ClothingSizes) == 0 && len(s.Materials) == 0 && len(s.Standards) == 0 &&
		len(s.Industries) == 0 && len(s.Environments) == 0 && s.ThumbLoop == nil
}

// oneOf is the sub-test for a scalar attribute under a multi-select
// dimension: OR across the selected values. An absent value never
// satisfies an active dimension.
func oneOf(value string, selected []string) bool {
	if value == "" {
		return false
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// anyOf is the sub-test for a list-valued attribute: the product passes if
// any of its values is among the selected options.
func anyOf(values, selected []string) bool {
	for _, v := range values {
		if oneOf(v, selected) {
			return true
		}
	}
	return false
}

// Matches evaluates every active dimension against one product: AND across
// dimensions, OR within each multi-select dimension.
func Matches(p models.Product, sel Selection, locale string) bool {
	if len(sel.Lengths) > 0 {
		v := productLength(p)
		if v == nil || !oneOf(FormatLength(*v), sel.Lengths) {
			return false
		}
	}
	if len(sel.Closures) > 0 && !oneOf(productClosure(p, locale), sel.Closures) {
		return false
	}
	if len(sel.Sizes) > 0 && !oneOf(Resolve(p.SizeLocales, locale, p.Size), sel.Sizes) {
		return false
	}
	if len(sel.ClothingSizes) > 0 {
		if p.Attributes.Clothing == nil || !anyOf(p.Attributes.Clothing.Sizes, sel.ClothingSizes) {
			return false
		}
	}
	if len(sel.Materials) > 0 && !oneOf(Resolve(p.MaterialLocale, locale, p.Material), sel.Materials) {
		return false
	}
	if len(sel.Standards) > 0 && !anyOf(p.Attributes.Standards(), sel.Standards) {
		return false
	}
	if len(sel.Industries) > 0 && !anyOf(ResolveList(p.Industries, locale, nil), sel.Industries) {
		return false
	}
	if len(sel.Environments) > 0 && !anyOf(productEnvironments(p), sel.Environments) {
		return false
	}
	if sel.ThumbLoop != nil {
		arm := p.Attributes.Arm
		if arm == nil || arm.ThumbLoop == nil || *arm.ThumbLoop != *sel.ThumbLoop {
			return false
		}
	}
	return true
}

// Filter returns the products matching the selection, preserving input
// order so any upstream relevance or curation order survives.
func Filter(products []models.Product, sel Selection, locale string) []models.Product {
	if sel.IsEmpty() {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, sel, locale) {
			out = append(out, p)
		}
	}
	return out
}
