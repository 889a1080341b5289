package order

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// LineItem pairs a product with the quantity and price-relevant metadata of
// one order position. LineItem is immutable; adjusting a quantity replaces
// the item inside the aggregate.
//
// The line total is always derived as quantity times unit price, and the
// order price is the sum of line totals. Neither is ever stored.
type LineItem struct {
	productID   kernel.ProductID
	quantity    ProductQuantity
	name        ProductName
	description ProductDescription
	unitPrice   float64
}

// NewLineItem validates all fields and constructs a line item. Name and
// description are optional: pass an empty string for absent. All field
// failures are collected into a single ValidationFailedError so callers can
// report every violated constraint at once.
func NewLineItem(
	productID kernel.ProductID,
	quantity int,
	name string,
	description string,
	unitPrice float64,
) (LineItem, error) {
	var violations []errs.FieldViolation

	if err := productID.Validate(); err != nil {
		violations = append(violations, errs.FieldViolation{
			Property: "productId", Value: productID.String(), Constraints: []string{"valid UUID"},
		})
	}

	qty, err := NewProductQuantity(quantity)
	if err != nil {
		violations = append(violations, errs.FieldViolation{
			Property: "quantity", Value: quantity, Constraints: []string{"at least 1"},
		})
	}

	var itemName ProductName
	if name != "" {
		if itemName, err = NewProductName(name); err != nil {
			violations = append(violations, errs.FieldViolation{
				Property: "name", Value: name, Constraints: []string{"non-empty when present"},
			})
		}
	}

	var itemDescription ProductDescription
	if description != "" {
		if itemDescription, err = NewProductDescription(description); err != nil {
			violations = append(violations, errs.FieldViolation{
				Property: "description", Value: description, Constraints: []string{"non-empty when present"},
			})
		}
	}

	if err = assertNonNegativePrice(unitPrice); err != nil {
		violations = append(violations, errs.FieldViolation{
			Property: "unitPrice", Value: unitPrice, Constraints: []string{"not negative"},
		})
	}

	if len(violations) > 0 {
		return LineItem{}, errs.NewValidationFailedError(violations...)
	}

	return LineItem{
		productID:   productID,
		quantity:    qty,
		name:        itemName,
		description: itemDescription,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the product this item refers to.
func (i LineItem) ProductID() kernel.ProductID { return i.productID }

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() ProductQuantity { return i.quantity }

// Name returns the optional product name snapshot.
func (i LineItem) Name() ProductName { return i.name }

// Description returns the optional product description snapshot.
func (i LineItem) Description() ProductDescription { return i.description }

// UnitPrice returns the price of a single unit.
func (i LineItem) UnitPrice() float64 { return i.unitPrice }

// Total returns the derived line total: quantity times unit price.
func (i LineItem) Total() float64 {
	return float64(i.quantity.Value()) * i.unitPrice
}

// withQuantity returns a copy of the item carrying the new quantity.
func (i LineItem) withQuantity(quantity ProductQuantity) LineItem {
	i.quantity = quantity
	return i
}

// Validate returns an error for a zero value line item.
func (i LineItem) Validate() error {
	if err := i.productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("lineItem must be created via NewLineItem", err)
	}
	return i.quantity.Validate()
}
