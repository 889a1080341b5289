// Package order implements the purchase order aggregate and its supporting
// value objects.
//
// The package includes:
//   - Order: the aggregate root owning identity, customer reference, line
//     items, status and dates
//   - Status: the lifecycle state machine
//     (Pending -> Confirmed -> Shipped -> Delivered, Cancelled from Pending
//     or Confirmed)
//   - LineItem, ProductQuantity, ProductName, ProductDescription, OrderDate,
//     DeliveryDate: validated value objects
//   - DomainEvent: immutable records the aggregate emits after successful
//     transitions
//
// Key business rules:
//   - An order is created in Pending status with a non-empty list of line
//     items, unique by product identifier
//   - Status changes only through the guarded transition methods; an invalid
//     transition fails with a typed lifecycle error and leaves the aggregate
//     untouched
//   - Line items may be added, removed or re-quantified only while Pending;
//     the order freezes once confirmed
//   - Price is always derived from the current line items, never stored
package order
