// Package errs provides the standardized error types for the ordering
// application. It implements a consistent pattern for error creation,
// formatting and unwrapping that is used throughout the codebase.
//
// The package covers two groups of failures:
//   - Generic value errors: ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError
//   - Order lifecycle errors: OrderLifecycleError (already cancelled, already
//     shipped, already delivered, transition not allowed),
//     OrderModificationNotAllowedError, ConcurrentModificationError and
//     ValidationFailedError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is / errors.As support
//
// Every type additionally implements the Classified interface: Code returns
// a stable client code and Category a transport-agnostic classification.
// Outer adapters derive protocol status codes exclusively from CategoryOf,
// never from string matching on messages. Errors without a classification
// fall into CategoryInternal and are treated as defects.
package errs
