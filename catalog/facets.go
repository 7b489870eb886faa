package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// Dimension is one filterable facet of the catalog.
type Dimension string

const (
	DimLength       Dimension = "length"
	DimClosure      Dimension = "closure"
	DimSize         Dimension = "size"
	DimClothingSize Dimension = "clothing_size"
	DimMaterial     Dimension = "material"
	DimStandard     Dimension = "standard"
	DimIndustry     Dimension = "industry"
	DimEnvironment  Dimension = "environment"
)

// Dimensions lists every facet dimension in render order.
var Dimensions = []Dimension{
	DimLength, DimClosure, DimSize, DimClothingSize,
	DimMaterial, DimStandard, DimIndustry, DimEnvironment,
}

// clothingSizeOrder is the domain-defined size sequence. Lexicographic
// ordering would place "2XL" before "L".
var clothingSizeOrder = []string{
	"XS", "S", "M", "L", "XL", "2XL", "3XL", "4XL", "5XL", "6XL", "7XL", "8XL",
}

var clothingSizeRank = func() map[string]int {
	rank := make(map[string]int, len(clothingSizeOrder))
	for i, s := range clothingSizeOrder {
		rank[s] = i
	}
	return rank
}()

// FormatLength renders a length value as its facet label, e.g. "45 cm".
func FormatLength(cm float64) string {
	return strconv.FormatFloat(cm, 'f', -1, 64) + " cm"
}

// lengthValue extracts the numeric prefix of a length label for sorting.
func lengthValue(label string) float64 {
	head, _, _ := strings.Cut(label, " ")
	v, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0
	}
	return v
}

// productLength prefers the sleeve length from the arm attribute bag over
// the product-level length.
func productLength(p models.Product) *float64 {
	if p.Attributes.Arm != nil && p.Attributes.Arm.LengthCM != nil {
		return p.Attributes.Arm.LengthCM
	}
	return p.LengthCM
}

func productClosure(p models.Product, locale string) string {
	if p.Attributes.Arm == nil {
		return ""
	}
	return Resolve(p.Attributes.Arm.ClosureLocales, locale, p.Attributes.Arm.Closure)
}

func productEnvironments(p models.Product) []string {
	env := p.Attributes.Environment
	if env == nil {
		return nil
	}
	var out []string
	for _, f := range []struct {
		set   bool
		label string
	}{
		{env.Chemical, "chemical"},
		{env.Cold, "cold"},
		{env.Dry, "dry"},
		{env.Heat, "heat"},
		{env.Oil, "oil"},
		{env.Wet, "wet"},
	} {
		if f.set {
			out = append(out, f.label)
		}
	}
	return out
}

// DeriveOptions computes the distinct facet options observed across the
// collection for one dimension, in display order. Numeric dimensions sort
// ascending by value, clothing sizes follow the fixed domain sequence, and
// everything else sorts lexicographically. A dimension with no observed
// values yields an empty slice; the caller renders no control for it.
func DeriveOptions(products []models.Product, dim Dimension, locale string) []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)

	add := func(label string) {
		label = strings.TrimSpace(label)
		if label == "" {
			return
		}
		if _, dup := seen[label]; dup {
			return
		}
		seen[label] = struct{}{}
		options = append(options, label)
	}

	for _, p := range products {
		switch dim {
		case DimLength:
			if v := productLength(p); v != nil {
				add(FormatLength(*v))
			}
		case DimClosure:
			add(productClosure(p, locale))
		case DimSize:
			add(Resolve(p.SizeLocales, locale, p.Size))
		case DimClothingSize:
			if p.Attributes.Clothing != nil {
				for _, s := range p.Attributes.Clothing.Sizes {
					add(s)
				}
			}
		case DimMaterial:
			add(Resolve(p.MaterialLocale, locale, p.Material))
		case DimStandard:
			for _, s := range p.Attributes.Standards() {
				add(s)
			}
		case DimIndustry:
			for _, s := range ResolveList(p.Industries, locale, nil) {
				add(s)
			}
		case DimEnvironment:
			for _, s := range productEnvironments(p) {
				add(s)
			}
		}
	}

	sortOptions(options, dim)
	return options
}

func sortOptions(options []string, dim Dimension) {
	switch dim {
	case DimLength:
		sort.SliceStable(options, func(i, j int) bool {
			return lengthValue(options[i]) < lengthValue(options[j])
		})
	case DimClothingSize:
		sort.SliceStable(options, func(i, j int) bool {
			ri, iKnown := clothingSizeRank[options[i]]
			rj, jKnown := clothingSizeRank[options[j]]
			switch {
			case iKnown && jKnown:
				return ri < rj
			case iKnown:
				return true
			case jKnown:
				return false
			}
			return options[i] < options[j]
		})
	default:
		sort.Strings(options)
	}
}

// DeriveAllOptions derives every non-empty dimension at once, keyed by
// dimension name. Empty dimensions are omitted so no filter control is
// rendered with zero options.
func DeriveAllOptions(products []models.Product, locale string) map[Dimension][]string {
	out := make(map[Dimension][]string, len(Dimensions))
	for _, dim := range Dimensions {
		if options := DeriveOptions(products, dim, locale); len(options) > 0 {
			out[dim] = options
		}
	}
	return out
}
