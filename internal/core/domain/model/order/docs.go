// Package order provides the Order aggregate and its Line entities.
//
// Key business rules:
//   - An order belongs to exactly one customer and has at least one line
//   - Each line records the unit price at the moment the order was placed, so
//     later catalog price changes never alter historical orders
//   - A product appears at most once per order
//   - Orders are created once and never mutated afterwards
package order
