// Package kernel contains the shared value objects of the ordering domain:
// the UUID wrapper and the typed identifiers built on top of it (OrderID,
// CustomerID, ProductID).
//
// All types in this package are immutable and validated at construction.
// A zero value is always invalid; identifiers are either generated fresh or
// parsed from an externally supplied string, and parsing fails fast so no
// invalid instance ever exists.
package kernel
