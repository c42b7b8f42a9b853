// Package kernel holds the value objects shared by every aggregate of the
// ordering domain.
//
//   - UUID: identity of customers, products, orders and order lines
//   - Money: a non-negative decimal amount used for catalog prices and order totals
//
// Both are immutable and validate themselves; the zero value of each is
// rejected by Validate so that a field left unset never reaches storage.
package kernel
