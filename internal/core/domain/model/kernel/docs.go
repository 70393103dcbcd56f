// Package kernel provides core domain primitives shared across the ordertrack
// domain model. Currently this is the UUID value object, which wraps
// github.com/google/uuid with validation and comparison behavior.
//
// Kernel primitives are immutable and thread-safe, and enforce their
// invariants through factory functions so that domain objects are always in a
// valid state.
package kernel
