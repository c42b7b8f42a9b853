// Package services provides domain services that coordinate several aggregates.
//
// The package includes:
//   - OrderPlacer: checks a customer's requested items against the loaded
//     products, snapshots prices into a new Order and withdraws the stock
//
// Services here are pure: they never touch storage. Loading aggregates and
// persisting the results is the job of the command handlers.
package services
