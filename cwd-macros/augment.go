// Package cwdmacros extends message enums with the variants of the shared
// DAO DAO module interfaces.
package cwdmacros

import (
	"fmt"
)

// EnumDefinition is a message enum as its author declared it, along with the
// interfaces it asks for. Interfaces are applied in slice order.
type EnumDefinition struct {
	Name       string
	Doc        string
	Variants   []VariantSpec
	Interfaces []InterfaceKey
	// VariantLimit caps the number of variants of the augmented enum. Zero
	// means no limit.
	VariantLimit int
}

// AugmentedEnumDefinition is an EnumDefinition whose variants have been
// extended with those of every applied interface.
type AugmentedEnumDefinition struct {
	Name       string
	Doc        string
	Variants   []VariantSpec
	Interfaces []InterfaceKey
}

func (d AugmentedEnumDefinition) VariantNames() []string {
	return variantNames(d.Variants)
}

// Variant finds a variant by name.
func (d AugmentedEnumDefinition) Variant(name string) (VariantSpec, bool) {
	for _, v := range d.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return VariantSpec{}, false
}

type augmentation struct {
	names    map[string]struct{}
	variants []VariantSpec
	applied  []InterfaceKey
}

// Augment appends the variants of def.Interfaces to def.Variants: first the
// declared variants, then each interface's variants in registry order. Any
// name collision is an error and no enum is produced.
func Augment(def EnumDefinition) (AugmentedEnumDefinition, error) {
	names := make(map[string]struct{}, len(def.Variants))
	for _, v := range def.Variants {
		if _, dup := names[v.Name]; dup {
			return AugmentedEnumDefinition{}, &MalformedEnumError{Enum: def.Name, Duplicate: v.Name}
		}
		names[v.Name] = struct{}{}
	}

	acc := augmentation{
		names:    names,
		variants: cloneVariants(def.Variants),
		applied:  make([]InterfaceKey, 0, len(def.Interfaces)),
	}
	var err error
	for _, key := range def.Interfaces {
		if acc, err = injectVariants(acc, key); err != nil {
			return AugmentedEnumDefinition{}, err
		}
	}

	if def.VariantLimit > 0 {
		if err := LimitVariantCount(def.Name, acc.variants, def.VariantLimit); err != nil {
			return AugmentedEnumDefinition{}, err
		}
	}

	return AugmentedEnumDefinition{
		Name:       def.Name,
		Doc:        def.Doc,
		Variants:   acc.variants,
		Interfaces: acc.applied,
	}, nil
}

func injectVariants(acc augmentation, key InterfaceKey) (augmentation, error) {
	descriptor, err := Lookup(key)
	if err != nil {
		return acc, err
	}
	if err := CheckConflicts(acc.names, descriptor); err != nil {
		return acc, err
	}
	for _, v := range descriptor.Variants {
		acc.variants = append(acc.variants, v)
		acc.names[v.Name] = struct{}{}
	}
	acc.applied = append(acc.applied, descriptor.Key)
	return acc, nil
}

// AugmentAll augments every definition independently and stops at the first
// failing enum.
func AugmentAll(defs []EnumDefinition) ([]AugmentedEnumDefinition, error) {
	out := make([]AugmentedEnumDefinition, 0, len(defs))
	for _, def := range defs {
		augmented, err := Augment(def)
		if err != nil {
			return nil, fmt.Errorf("augment %s: %w", def.Name, err)
		}
		out = append(out, augmented)
	}
	return out, nil
}
