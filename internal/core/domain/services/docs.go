// Package services contains stateless domain services of the shipping
// context: void eligibility and order item aggregation. Services here are
// pure functions over domain objects; they perform no I/O.
package services
