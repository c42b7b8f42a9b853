// Package customer provides the Customer aggregate. The ordering workflow only
// reads customers to confirm they exist; they are created through their own
// command and never mutated afterwards.
package customer
