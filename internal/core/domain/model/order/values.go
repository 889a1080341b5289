package order

import (
	"fmt"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
)

// minQuantity is the smallest quantity a line item may carry.
const minQuantity = 1

// ProductQuantity wraps a positive line item quantity.
type ProductQuantity struct {
	value int
}

// NewProductQuantity validates and wraps a quantity. Quantities below 1 are
// rejected.
func NewProductQuantity(value int) (ProductQuantity, error) {
	if value < minQuantity {
		return ProductQuantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than %d", value, minQuantity))
	}
	return ProductQuantity{value: value}, nil
}

// Value returns the wrapped quantity.
func (q ProductQuantity) Value() int { return q.value }

// Validate returns an error for a zero value quantity.
func (q ProductQuantity) Validate() error {
	if q.value < minQuantity {
		return errs.NewValueIsRequiredError("quantity must be created via NewProductQuantity")
	}
	return nil
}

// ProductName is an optional descriptive name for a line item. The zero
// value means absent; a present name must be non-empty.
type ProductName struct {
	value string
}

// NewProductName validates and wraps a product name. Whitespace-only input
// counts as empty and is rejected.
func NewProductName(value string) (ProductName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductName{}, errs.NewValueIsRequiredError("productName")
	}
	return ProductName{value: trimmed}, nil
}

// Value returns the wrapped name, empty when absent.
func (n ProductName) Value() string { return n.value }

// IsZero reports whether the name is absent.
func (n ProductName) IsZero() bool { return n.value == "" }

// ProductDescription is an optional free-form description for a line item.
// The zero value means absent; a present description must be non-empty.
type ProductDescription struct {
	value string
}

// NewProductDescription validates and wraps a product description.
func NewProductDescription(value string) (ProductDescription, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductDescription{}, errs.NewValueIsRequiredError("productDescription")
	}
	return ProductDescription{value: trimmed}, nil
}

// Value returns the wrapped description, empty when absent.
func (d ProductDescription) Value() string { return d.value }

// IsZero reports whether the description is absent.
func (d ProductDescription) IsZero() bool { return d.value == "" }

// OrderDate is the time an order was placed.
type OrderDate struct {
	value time.Time
}

// NewOrderDate validates and wraps a placement timestamp. Zero timestamps
// are rejected.
func NewOrderDate(value time.Time) (OrderDate, error) {
	if value.IsZero() {
		return OrderDate{}, errs.NewValueIsRequiredError("orderDate")
	}
	return OrderDate{value: value.UTC()}, nil
}

// Time returns the wrapped timestamp in UTC.
func (d OrderDate) Time() time.Time { return d.value }

// Validate returns an error for a zero value date.
func (d OrderDate) Validate() error {
	if d.value.IsZero() {
		return errs.NewValueIsRequiredError("orderDate must be created via NewOrderDate")
	}
	return nil
}

// DeliveryDate is the estimated or actual delivery time of an order. No
// ordering relative to OrderDate is enforced; the estimate may legitimately
// precede a backdated placement record.
type DeliveryDate struct {
	value time.Time
}

// NewDeliveryDate validates and wraps a delivery timestamp.
func NewDeliveryDate(value time.Time) (DeliveryDate, error) {
	if value.IsZero() {
		return DeliveryDate{}, errs.NewValueIsRequiredError("deliveryDate")
	}
	return DeliveryDate{value: value.UTC()}, nil
}

// Time returns the wrapped timestamp in UTC.
func (d DeliveryDate) Time() time.Time { return d.value }

// Validate returns an error for a zero value date.
func (d DeliveryDate) Validate() error {
	if d.value.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate must be created via NewDeliveryDate")
	}
	return nil
}

// assertNonNegativePrice guards unit prices shared by line item validation.
func assertNonNegativePrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", price))
	}
	return nil
}
