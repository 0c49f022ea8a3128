package cwdmacros

import (
	"fmt"
	"strings"
	"unicode"
)

// PayloadKind is the shape of the data carried by a variant.
type PayloadKind int

const (
	// PayloadUnit is a bare variant, serialized as a string tag.
	PayloadUnit PayloadKind = iota
	// PayloadNamed is a struct-like variant, `Foo { a: u64 }`. An empty field
	// list is still a named payload: `Foo {}` serializes as {"foo":{}}.
	PayloadNamed
	// PayloadTuple carries exactly one unnamed field, `Foo(Msg)`.
	PayloadTuple
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadUnit:
		return "unit"
	case PayloadNamed:
		return "named"
	case PayloadTuple:
		return "tuple"
	default:
		return fmt.Sprintf("PayloadKind(%d)", int(k))
	}
}

// ParsePayloadKind is the inverse of PayloadKind.String. The empty string is
// read as named, the shape almost every message variant has.
func ParsePayloadKind(s string) (PayloadKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "named", "struct":
		return PayloadNamed, nil
	case "unit":
		return PayloadUnit, nil
	case "tuple", "newtype":
		return PayloadTuple, nil
	default:
		return 0, fmt.Errorf("unknown payload kind %q", s)
	}
}

type Field struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// Optional reports whether the field type is an Option<..>.
func (f Field) Optional() bool {
	return strings.HasPrefix(strings.TrimSpace(f.Type), "Option<")
}

// VariantSpec describes one case of a message enum.
type VariantSpec struct {
	Name   string
	Doc    string
	Fields []Field
	Kind   PayloadKind
	// Returns is the response type a QueryResponses derivation binds to the
	// variant. Execute variants leave it empty.
	Returns string
}

// TagName is the externally tagged wire name, e.g. TotalPowerAtHeight is
// sent as total_power_at_height and Cw20Receive as cw20_receive.
func (v VariantSpec) TagName() string {
	return SnakeCase(v.Name)
}

// SnakeCase is the snake_case renaming serde applies to enum variants: an
// underscore before every upper case letter but the first, then lower case.
// Digits never start a new word.
func SnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func (v VariantSpec) clone() VariantSpec {
	out := v
	if v.Fields != nil {
		out.Fields = make([]Field, len(v.Fields))
		copy(out.Fields, v.Fields)
	}
	return out
}

func cloneVariants(in []VariantSpec) []VariantSpec {
	out := make([]VariantSpec, 0, len(in))
	for _, v := range in {
		out = append(out, v.clone())
	}
	return out
}

func variantNames(variants []VariantSpec) []string {
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, v.Name)
	}
	return names
}
