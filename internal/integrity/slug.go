package integrity

import "strings"

// rootSlugPrefix is the fixed prefix every category-type slug hangs off.
const rootSlugPrefix = "/jewellery/"

// DeriveSlug turns a human-readable name or title into its URL-safe
// form: trimmed, internal whitespace runs collapsed to a single hyphen,
// lower-cased. Uniqueness is NOT checked here; the storage layer's
// unique index surfaces collisions as write failures.
func DeriveSlug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// CategoryTypeSlug derives the hierarchical slug for a category type,
// e.g. "Rings" -> "/jewellery/rings".
func CategoryTypeSlug(name string) string {
	return rootSlugPrefix + DeriveSlug(name)
}

// CategorySlug derives the hierarchical slug for a category from its
// parent category-type's slug, e.g. ("/jewellery/rings", "Statement
// Ring") -> "/jewellery/rings/statement-ring". The parent slug is a
// point-in-time snapshot; a later rename of the type does not rewrite
// existing category slugs.
func CategorySlug(categoryTypeSlug, name string) string {
	return categoryTypeSlug + "/" + DeriveSlug(name)
}
