// Package kernel contains shared value objects used across the shipping
// domain model: identifiers and the pickup time window. Value objects are
// immutable, validated at construction, and safe for concurrent use.
package kernel
