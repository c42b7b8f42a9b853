// Package product provides the Product aggregate: a catalog entry with a unit
// price and an available quantity.
//
// Key business rules:
//   - Quantity never goes below zero; Withdraw refuses to overdraw
//   - Price is a non-negative Money value
//   - Version is the optimistic concurrency token of the stored row; it is
//     carried through QuantityUpdate so a stale write can be detected
package product
