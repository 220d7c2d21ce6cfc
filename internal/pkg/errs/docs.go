// Package errs provides standardized error types for the mailroom application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ForbiddenError: For when the acting user lacks the capability or store scope
//   - InvalidTransitionError: For when a package status change is not allowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
//
// The HTTP adapter maps the sentinels onto status codes: validation errors to 422,
// ErrForbidden to 403, ErrObjectNotFound to 404, ErrInvalidTransition to 409 and
// ErrUnauthenticated/ErrInvalidCredentials to 401.
package errs
