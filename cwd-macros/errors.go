package cwdmacros

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownInterface = errors.New("unknown interface")
	ErrVariantConflict  = errors.New("variant conflict")
	ErrMalformedEnum    = errors.New("malformed enum")
	ErrVariantLimit     = errors.New("variant count limit exceeded")
)

// UnknownInterfaceError is returned when an enum asks for an interface the
// registry does not carry.
type UnknownInterfaceError struct {
	Key InterfaceKey
}

func (e *UnknownInterfaceError) Error() string {
	return fmt.Sprintf("unknown interface %q", string(e.Key))
}

func (e *UnknownInterfaceError) Is(target error) bool {
	return target == ErrUnknownInterface
}

// VariantConflictError names the variant that collided and the interface
// that tried to add it.
type VariantConflictError struct {
	Variant   string
	Interface InterfaceKey
}

func (e *VariantConflictError) Error() string {
	return fmt.Sprintf("variant %s added by interface %s conflicts with an existing variant", e.Variant, e.Interface)
}

func (e *VariantConflictError) Is(target error) bool {
	return target == ErrVariantConflict
}

type MalformedEnumError struct {
	Enum      string
	Duplicate string
}

func (e *MalformedEnumError) Error() string {
	return fmt.Sprintf("enum %s declares variant %s more than once", e.Enum, e.Duplicate)
}

func (e *MalformedEnumError) Is(target error) bool {
	return target == ErrMalformedEnum
}

type VariantLimitError struct {
	Enum    string
	Limit   int
	Variant string
}

func (e *VariantLimitError) Error() string {
	return fmt.Sprintf("enum %s: variant %s exceeds the variant count limit of %d", e.Enum, e.Variant, e.Limit)
}

func (e *VariantLimitError) Is(target error) bool {
	return target == ErrVariantLimit
}
