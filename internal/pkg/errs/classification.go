package errs

import "errors"

// Category is the transport-agnostic classification of an error. Outer
// adapters (HTTP, RPC, messaging) map categories to protocol status codes
// without inspecting error messages.
type Category int

const (
	// CategoryInternal is the default classification. Any error that is not
	// explicitly classified is treated as a defect and surfaced as an opaque
	// internal failure, never silently swallowed.
	CategoryInternal Category = iota

	// CategoryValidation marks malformed identifiers or field constraint
	// violations. Client input fault, recoverable by correcting the request,
	// never retried automatically.
	CategoryValidation

	// CategoryLifecycleViolation marks a state transition incompatible with
	// the current aggregate state. Deterministic client input fault, never
	// retried.
	CategoryLifecycleViolation

	// CategoryNotFound marks absence of a requested object. A valid outcome
	// the caller must branch on.
	CategoryNotFound

	// CategoryConflict marks an optimistic concurrency failure. Transient,
	// retried a bounded number of times by the orchestration layer.
	CategoryConflict
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryLifecycleViolation:
		return "lifecycle-violation"
	case CategoryNotFound:
		return "not-found"
	case CategoryConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Classified is implemented by every error type in this package. Code is a
// stable machine-readable client code; Category drives status code mapping.
type Classified interface {
	error
	Code() string
	Category() Category
}

// CategoryOf walks the error chain and returns the category of the first
// classified error. Unclassified errors default to CategoryInternal.
func CategoryOf(err error) Category {
	var classified Classified
	if errors.As(err, &classified) {
		return classified.Category()
	}
	return CategoryInternal
}

// CodeOf walks the error chain and returns the client code of the first
// classified error, or "INTERNAL" for unclassified errors.
func CodeOf(err error) string {
	var classified Classified
	if errors.As(err, &classified) {
		return classified.Code()
	}
	return "INTERNAL"
}
