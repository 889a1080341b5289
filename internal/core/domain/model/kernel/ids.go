package kernel

import "ordering/internal/pkg/errs"

// OrderID identifies an order aggregate.
//
// Generate a fresh identifier with NewOrderID, or validate an externally
// supplied string with OrderIDFromString. Two identifiers are equal iff
// their underlying values are equal.
type OrderID struct {
	id UUID
}

// NewOrderID generates a new random order identifier.
func NewOrderID() OrderID {
	return OrderID{id: NewUUID()}
}

// OrderIDFromString validates and wraps an externally supplied identifier.
// Fails with a validation error when the string is empty or not a UUID.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	return OrderID{id: id}, nil
}

// String returns the raw identifier value.
func (i OrderID) String() string { return i.id.String() }

// UUID returns the underlying UUID value object.
func (i OrderID) UUID() UUID { return i.id }

// IsEqual reports whether two order identifiers hold the same value.
func (i OrderID) IsEqual(other OrderID) bool { return i.id.IsEqual(other.id) }

// Validate returns a validation error for a zero value identifier.
func (i OrderID) Validate() error {
	if err := i.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	return nil
}

// CustomerID identifies the customer an order belongs to.
type CustomerID struct {
	id UUID
}

// NewCustomerID generates a new random customer identifier.
func NewCustomerID() CustomerID {
	return CustomerID{id: NewUUID()}
}

// CustomerIDFromString validates and wraps an externally supplied identifier.
func CustomerIDFromString(s string) (CustomerID, error) {
	if s == "" {
		return CustomerID{}, errs.NewValueIsRequiredError("customerId")
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return CustomerID{}, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}
	return CustomerID{id: id}, nil
}

// String returns the raw identifier value.
func (i CustomerID) String() string { return i.id.String() }

// UUID returns the underlying UUID value object.
func (i CustomerID) UUID() UUID { return i.id }

// IsEqual reports whether two customer identifiers hold the same value.
func (i CustomerID) IsEqual(other CustomerID) bool { return i.id.IsEqual(other.id) }

// Validate returns a validation error for a zero value identifier.
func (i CustomerID) Validate() error {
	if err := i.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	return nil
}

// ProductID identifies a product referenced by an order line item. Line
// items within one order are unique by product identifier.
type ProductID struct {
	id UUID
}

// NewProductID generates a new random product identifier.
func NewProductID() ProductID {
	return ProductID{id: NewUUID()}
}

// ProductIDFromString validates and wraps an externally supplied identifier.
func ProductIDFromString(s string) (ProductID, error) {
	if s == "" {
		return ProductID{}, errs.NewValueIsRequiredError("productId")
	}
	id, err := UUIDFromString(s)
	if err != nil {
		return ProductID{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	return ProductID{id: id}, nil
}

// String returns the raw identifier value.
func (i ProductID) String() string { return i.id.String() }

// UUID returns the underlying UUID value object.
func (i ProductID) UUID() UUID { return i.id }

// IsEqual reports whether two product identifiers hold the same value.
func (i ProductID) IsEqual(other ProductID) bool { return i.id.IsEqual(other.id) }

// Validate returns a validation error for a zero value identifier.
func (i ProductID) Validate() error {
	if err := i.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	return nil
}
