// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects so that zero-value instances can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures a struct was created through its constructor function.
//
// Example usage:
//
//	var ErrCollectCommandNotConstructed = errors.New("CollectPackageCommand must be created via NewCollectPackageCommand")
//
//	type CollectPackageCommand struct {
//	    packageID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c CollectPackageCommand) Validate() error {
//	    return c.guard.Validate(ErrCollectCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
