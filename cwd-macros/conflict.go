package cwdmacros

// CheckConflicts fails on the first variant of candidate, in registry order,
// whose name is already taken. existing is not modified.
func CheckConflicts(existing map[string]struct{}, candidate InterfaceDescriptor) error {
	for _, v := range candidate.Variants {
		if _, taken := existing[v.Name]; taken {
			return &VariantConflictError{Variant: v.Name, Interface: candidate.Key}
		}
	}
	return nil
}
