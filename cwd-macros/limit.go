package cwdmacros

// LimitVariantCount fails if variants holds more than limit entries, naming
// the first variant past the limit.
func LimitVariantCount(enum string, variants []VariantSpec, limit int) error {
	if limit < 0 || len(variants) <= limit {
		return nil
	}
	return &VariantLimitError{Enum: enum, Limit: limit, Variant: variants[limit].Name}
}
