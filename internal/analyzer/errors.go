package analyzer

import (
	"fmt"

	"github.com/funvibe/cs2dec/internal/typesystem"
)

// PlaceholderCastError is returned when an unresolved placeholder value
// reaches a site that needs a concrete type.
type PlaceholderCastError struct {
	Required typesystem.Type
}

func (e *PlaceholderCastError) Error() string {
	return fmt.Sprintf("can't cast placeholder value to %s", e.Required)
}

func NewPlaceholderCastError(required typesystem.Type) *PlaceholderCastError {
	return &PlaceholderCastError{Required: required}
}

// IncompatibleCastError indicates the stack shapes of the two types differ
// and no coercion rule applies.
type IncompatibleCastError struct {
	From typesystem.Type
	To   typesystem.Type
}

func (e *IncompatibleCastError) Error() string {
	return fmt.Sprintf("incompatible cast %s to %s", e.From, e.To)
}

func NewIncompatibleCastError(from, to typesystem.Type) *IncompatibleCastError {
	return &IncompatibleCastError{From: from, To: to}
}
