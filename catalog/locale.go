// Package catalog holds the pure, in-memory half of the storefront core:
// locale resolution, category classification, facet derivation and
// predicate filtering. Everything here is deterministic and side-effect
// free; callers pass the locale explicitly on every call.
package catalog

import "github.com/HandLine-Safety/handline-catalog-backend/models"

// DefaultLocale is the universal fallback locale.
const DefaultLocale = "en"

// Resolve returns the display string for the preferred locale, falling back
// to "en", then to the canonical value, then to "". Missing translations are
// expected during content migration, so this never errors.
func Resolve(m models.LocaleMap, locale, canonical string) string {
	if m != nil {
		if v, ok := m[locale]; ok && v != "" {
			return v
		}
		if v, ok := m[DefaultLocale]; ok && v != "" {
			return v
		}
	}
	return canonical
}

// ResolveList applies the same three-tier fallback to a list-valued field.
// A locale's list is used wholesale; lists are never merged across locales.
func ResolveList(m models.LocaleListMap, locale string, canonical []string) []string {
	if m != nil {
		if v, ok := m[locale]; ok && len(v) > 0 {
			return v
		}
		if v, ok := m[DefaultLocale]; ok && len(v) > 0 {
			return v
		}
	}
	return canonical
}
