package strategy

import "fmt"

// UnknownFamilyError is returned for a family with no registered algorithm.
type UnknownFamilyError struct {
	Family string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("unknown algorithm: %s", e.Family)
}

// UnknownVariantError is returned when the family exists but does not offer
// the requested variant.
type UnknownVariantError struct {
	Family  string
	Variant string
	Message string
}

func (e *UnknownVariantError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Variant == "" {
		return fmt.Sprintf("algorithm type is required for %s", e.Family)
	}
	return fmt.Sprintf("Unknown algorithm type: %s", e.Variant)
}
