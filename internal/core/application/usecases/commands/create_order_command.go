package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput carries the client-supplied fields of one order position.
// Field-level validation happens when the line item value object is built;
// the command only checks the list is non-empty.
type OrderItemInput struct {
	ProductID   string
	Quantity    int
	Name        string
	Description string
	UnitPrice   float64
}

// CreateOrderCommand represents a request to place a new purchase order.
// Status and price are never accepted as input: every order starts Pending
// and the price is always derived from its line items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.OrderID
	customerID   kernel.CustomerID
	orderDate    time.Time
	deliveryDate time.Time
	items        []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates that
// both identifiers are constructed, both dates are set and at least one item
// is supplied.
func NewCreateOrderCommand(
	orderID kernel.OrderID,
	customerID kernel.CustomerID,
	orderDate time.Time,
	deliveryDate time.Time,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDates(orderDate, deliveryDate),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.OrderID { return c.orderID }

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.CustomerID { return c.customerID }

// OrderDate returns the placement time.
func (c CreateOrderCommand) OrderDate() time.Time { return c.orderDate }

// DeliveryDate returns the delivery estimate.
func (c CreateOrderCommand) DeliveryDate() time.Time { return c.deliveryDate }

// Items returns the requested order positions.
func (c CreateOrderCommand) Items() []OrderItemInput {
	items := make([]OrderItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDates(orderDate, deliveryDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	c.orderDate = orderDate
	c.deliveryDate = deliveryDate
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]OrderItemInput, len(items))
	copy(c.items, items)
	return nil
}
