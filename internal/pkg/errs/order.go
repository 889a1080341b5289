package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for order lifecycle failures.
var (
	ErrOrderAlreadyCancelled       = errors.New("order is already cancelled")
	ErrOrderAlreadyShipped         = errors.New("order is already shipped")
	ErrOrderAlreadyDelivered       = errors.New("order is already delivered")
	ErrOrderTransitionNotAllowed   = errors.New("order transition is not allowed")
	ErrOrderModificationNotAllowed = errors.New("order modification is not allowed")
	ErrConcurrentModification      = errors.New("concurrent modification detected")
	ErrValidationFailed            = errors.New("validation failed")
)

// OrderLifecycleError indicates that a transition was attempted against an
// order whose current status forbids it. The error carries the offending
// order's identifier, its status at the time of the attempt, and the name of
// the attempted action.
type OrderLifecycleError struct {
	OrderID string
	Status  string
	Action  string

	sentinel error
	code     string
}

// NewOrderAlreadyCancelledError reports an action attempted against a
// cancelled order.
func NewOrderAlreadyCancelledError(orderID, status, action string) *OrderLifecycleError {
	return &OrderLifecycleError{
		OrderID: orderID, Status: status, Action: action,
		sentinel: ErrOrderAlreadyCancelled, code: "ORDER_ALREADY_CANCELLED",
	}
}

// NewOrderAlreadyShippedError reports an action attempted against a shipped
// order.
func NewOrderAlreadyShippedError(orderID, status, action string) *OrderLifecycleError {
	return &OrderLifecycleError{
		OrderID: orderID, Status: status, Action: action,
		sentinel: ErrOrderAlreadyShipped, code: "ORDER_ALREADY_SHIPPED",
	}
}

// NewOrderAlreadyDeliveredError reports an action attempted against a
// delivered order.
func NewOrderAlreadyDeliveredError(orderID, status, action string) *OrderLifecycleError {
	return &OrderLifecycleError{
		OrderID: orderID, Status: status, Action: action,
		sentinel: ErrOrderAlreadyDelivered, code: "ORDER_ALREADY_DELIVERED",
	}
}

// NewOrderTransitionNotAllowedError reports a transition with no dedicated
// failure kind, such as shipping an order that was never confirmed.
func NewOrderTransitionNotAllowedError(orderID, status, action string) *OrderLifecycleError {
	return &OrderLifecycleError{
		OrderID: orderID, Status: status, Action: action,
		sentinel: ErrOrderTransitionNotAllowed, code: "ORDER_TRANSITION_NOT_ALLOWED",
	}
}

func (e *OrderLifecycleError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s in status %s cannot be %s",
		e.sentinel, e.OrderID, e.Status, e.Action))
}

func (e *OrderLifecycleError) Unwrap() error { return e.sentinel }

// Code returns the transport-agnostic client code for this error.
func (e *OrderLifecycleError) Code() string { return e.code }

// Category classifies lifecycle violations as deterministic client input
// faults.
func (e *OrderLifecycleError) Category() Category { return CategoryLifecycleViolation }

// OrderModificationNotAllowedError indicates an attempt to change line items
// of an order that is no longer pending. Orders freeze once confirmed.
type OrderModificationNotAllowedError struct {
	OrderID string
	Status  string
}

// NewOrderModificationNotAllowedError creates an error for a line item
// mutation attempted after confirmation.
func NewOrderModificationNotAllowedError(orderID, status string) *OrderModificationNotAllowedError {
	return &OrderModificationNotAllowedError{OrderID: orderID, Status: status}
}

func (e *OrderModificationNotAllowedError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s is frozen in status %s",
		ErrOrderModificationNotAllowed, e.OrderID, e.Status))
}

func (e *OrderModificationNotAllowedError) Unwrap() error { return ErrOrderModificationNotAllowed }

// Code returns the transport-agnostic client code for this error.
func (e *OrderModificationNotAllowedError) Code() string { return "ORDER_MODIFICATION_NOT_ALLOWED" }

// Category classifies frozen-order mutations as lifecycle violations.
func (e *OrderModificationNotAllowedError) Category() Category { return CategoryLifecycleViolation }

// ConcurrentModificationError indicates that a save hit a stale persistence
// version because the underlying record changed since it was loaded.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Version   int64
}

// NewConcurrentModificationError creates a ConcurrentModificationError for
// the given object identifier and the version the writer held.
func NewConcurrentModificationError(paramName string, id any, version int64) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id, Version: version}
}

func (e *ConcurrentModificationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v at version %d was changed by another writer",
		ErrConcurrentModification, e.ParamName, e.ID, e.Version))
}

func (e *ConcurrentModificationError) Unwrap() error { return ErrConcurrentModification }

// Code returns the transport-agnostic client code for this error.
func (e *ConcurrentModificationError) Code() string { return "CONCURRENT_MODIFICATION" }

// Category classifies optimistic conflicts as transient storage conflicts.
func (e *ConcurrentModificationError) Category() Category { return CategoryConflict }

// FieldViolation describes a single field-level validation failure: the
// offending property, the supplied value and the constraints it violated.
type FieldViolation struct {
	Property    string
	Value       any
	Constraints []string
}

func (v FieldViolation) String() string {
	return fmt.Sprintf("%s=%v violates [%s]", v.Property, v.Value, strings.Join(v.Constraints, ", "))
}

// ValidationFailedError aggregates one or more field-level validation
// failures into a single error.
type ValidationFailedError struct {
	Violations []FieldViolation
}

// NewValidationFailedError creates a ValidationFailedError from the collected
// violations. At least one violation is expected.
func NewValidationFailedError(violations ...FieldViolation) *ValidationFailedError {
	return &ValidationFailedError{Violations: violations}
}

func (e *ValidationFailedError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; ")))
}

func (e *ValidationFailedError) Unwrap() error { return ErrValidationFailed }

// Code returns the transport-agnostic client code for this error.
func (e *ValidationFailedError) Code() string { return "VALIDATION_FAILED" }

// Category classifies aggregated field failures as validation failures.
func (e *ValidationFailedError) Category() Category { return CategoryValidation }
