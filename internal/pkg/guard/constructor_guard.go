// Package guard provides a defensive construction pattern for commands, queries,
// and value objects. Embedding a ConstructorGuard lets an object detect whether it
// was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instantiation of guarded objects.
// The internal flag is only set when the object is built through its constructor,
// so any zero-value struct fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was built via its constructor,
// otherwise the provided validationError (or ErrDefaultConstructorGuard when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
