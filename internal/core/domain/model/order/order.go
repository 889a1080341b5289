package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the purchase order aggregate root. It owns identity, customer
// reference, dates, line items and status, and is the only place lifecycle
// transitions happen.
//
// Invariants:
//   - status changes only through the guarded transition methods
//   - the line item list is non-empty and unique by product identifier for
//     the aggregate's whole life
//   - price is always recomputed from current line items, never cached
//   - an invalid transition leaves the aggregate completely unchanged
type Order struct {
	id           kernel.OrderID
	customerID   kernel.CustomerID
	orderDate    OrderDate
	deliveryDate DeliveryDate
	status       Status
	items        []LineItem

	// version is the optimistic concurrency counter maintained by the
	// repository. Zero for unsaved aggregates.
	version int64

	// events holds domain events recorded since the last drain.
	events []DomainEvent

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the given line items.
// All parameters are validated; the item list must be non-empty and unique
// by product identifier. On success an order-created event is recorded.
func NewOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	orderDate OrderDate,
	deliveryDate DeliveryDate,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setOrderDate(orderDate),
		o.setDeliveryDate(deliveryDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.recordEvent(EventOrderCreated)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and version. No event is recorded; restoring is not a state change.
func RestoreOrder(
	id kernel.OrderID,
	customerID kernel.CustomerID,
	orderDate OrderDate,
	deliveryDate DeliveryDate,
	status Status,
	items []LineItem,
	version int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setOrderDate(orderDate),
		o.setDeliveryDate(deliveryDate),
		o.setStatus(status),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed. Call when
// reconstructing orders from persistence to catch zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the customer the order belongs to.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// OrderDate returns the time the order was placed.
func (o *Order) OrderDate() OrderDate {
	return o.orderDate
}

// DeliveryDate returns the estimated or actual delivery time.
func (o *Order) DeliveryDate() DeliveryDate {
	return o.deliveryDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the persistence version last loaded for this aggregate.
func (o *Order) Version() int64 {
	return o.version
}

// Items returns a copy of the current line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Price returns the derived order price: the sum over line items of
// quantity times unit price. Never stored, so it cannot diverge from the
// underlying items.
func (o *Order) Price() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

// Events returns a copy of the domain events recorded since the last drain.
func (o *Order) Events() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops the recorded events. The orchestration layer calls this
// after handing the events to the outbox.
func (o *Order) ClearEvents() {
	o.events = nil
}

// Confirm transitions the order from Pending to Confirmed and records an
// order-confirmed event. Fails with a typed lifecycle error from any other
// status; the aggregate is left unchanged on failure.
func (o *Order) Confirm() error {
	if !o.status.Allows(ActionConfirm) {
		return o.transitionError(ActionConfirm)
	}

	o.status = Confirmed
	o.recordEvent(EventOrderConfirmed)
	return nil
}

// Cancel transitions the order to Cancelled. Allowed from Pending or
// Confirmed only: a shipped order fails with an already-shipped error and a
// delivered order with an already-delivered error.
func (o *Order) Cancel() error {
	if !o.status.Allows(ActionCancel) {
		return o.transitionError(ActionCancel)
	}

	o.status = Cancelled
	o.recordEvent(EventOrderCancelled)
	return nil
}

// Ship transitions the order from Confirmed to Shipped and records an
// order-shipped event.
func (o *Order) Ship() error {
	if !o.status.Allows(ActionShip) {
		return o.transitionError(ActionShip)
	}

	o.status = Shipped
	o.recordEvent(EventOrderShipped)
	return nil
}

// Deliver transitions the order from Shipped to Delivered and records an
// order-delivered event.
func (o *Order) Deliver() error {
	if !o.status.Allows(ActionDeliver) {
		return o.transitionError(ActionDeliver)
	}

	o.status = Delivered
	o.recordEvent(EventOrderDelivered)
	return nil
}

// AddItem appends a new line item. Allowed only while Pending; the product
// must not already be present in the order.
func (o *Order) AddItem(item LineItem) error {
	if err := o.assertMutable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if o.findItem(item.ProductID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("product %s is already in the order", item.ProductID()))
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the line item for the given product. Allowed only
// while Pending; removing the last item is refused because an order with
// zero items is invalid.
func (o *Order) RemoveItem(productID kernel.ProductID) error {
	if err := o.assertMutable(); err != nil {
		return err
	}

	idx := o.findItem(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("lineItem", productID.String())
	}
	if len(o.items) == 1 {
		return errs.NewValueIsInvalidErrorWithCause("lineItems",
			fmt.Errorf("order %s must keep at least one line item", o.id))
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	return nil
}

// ChangeItemQuantity replaces the quantity of an existing line item.
// Allowed only while Pending.
func (o *Order) ChangeItemQuantity(productID kernel.ProductID, quantity int) error {
	if err := o.assertMutable(); err != nil {
		return err
	}

	idx := o.findItem(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("lineItem", productID.String())
	}

	qty, err := NewProductQuantity(quantity)
	if err != nil {
		return err
	}

	o.items[idx] = o.items[idx].withQuantity(qty)
	return nil
}

// MarkSaved records the persistence version assigned by the repository
// after a successful save.
func (o *Order) MarkSaved(version int64) {
	o.version = version
}

// transitionError maps the current status to the matching typed lifecycle
// failure for a rejected action.
func (o *Order) transitionError(action Action) error {
	switch o.status {
	case Cancelled:
		return errs.NewOrderAlreadyCancelledError(o.id.String(), o.status.String(), string(action))
	case Shipped:
		return errs.NewOrderAlreadyShippedError(o.id.String(), o.status.String(), string(action))
	case Delivered:
		return errs.NewOrderAlreadyDeliveredError(o.id.String(), o.status.String(), string(action))
	default:
		return errs.NewOrderTransitionNotAllowedError(o.id.String(), o.status.String(), string(action))
	}
}

// assertMutable guards the line item operations: an order is frozen once it
// leaves Pending.
func (o *Order) assertMutable() error {
	if o.status != Pending {
		return errs.NewOrderModificationNotAllowedError(o.id.String(), o.status.String())
	}
	return nil
}

func (o *Order) findItem(productID kernel.ProductID) int {
	for i, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return i
		}
	}
	return -1
}

func (o *Order) recordEvent(eventType string) {
	o.events = append(o.events, newDomainEvent(eventType, o))
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setOrderDate(orderDate OrderDate) error {
	if err := orderDate.Validate(); err != nil {
		return err
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate DeliveryDate) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		key := item.ProductID().String()
		if seen[key] {
			return errs.NewValueIsInvalidErrorWithCause("lineItems",
				fmt.Errorf("duplicate product %s", key))
		}
		seen[key] = true
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}
