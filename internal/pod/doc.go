// Package pod owns the POD wire contract: the self-describing value layout,
// the recursive decoder that walks it against a typeinfo scope, and the
// builder that produces it.
//
// Ownership boundary:
// - value header, padding and container body primitives
// - scalar codec and container walkers (array, struct, object, prop)
// - per-node error reporting and depth limits
//
// Decoded nodes borrow the caller's buffer; nothing here mutates shared state,
// so one Decoder may be used from many goroutines.
package pod
