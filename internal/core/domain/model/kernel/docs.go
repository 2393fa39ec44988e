// Package kernel contains shared value objects used across the domain model.
// It currently holds the UUID identifier type that order aggregates and
// adapters rely on for identity.
package kernel
