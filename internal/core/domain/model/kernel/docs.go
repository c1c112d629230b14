// Package kernel provides core domain primitives for the deliveries service.
//
// It currently contains a single building block:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// Kernel primitives are immutable, thread-safe, and enforce their own
// invariants so that domain objects built on top of them are always in a
// valid state.
package kernel
