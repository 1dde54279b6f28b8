// Package types defines the immutable type descriptors produced by schema parsing.
//
// A descriptor is one of three closed variants: Primitive, Pointer and List.
// Each carries the byte width of an inline occurrence in the record region
// (or -1 when variable) and the width of the slot used when it is reached
// through a pointer.
//
// # Key Types
//
//   - Type: closed descriptor interface
//   - Kind: primitive discriminator (bool, byte, short, int, ...)
//
// This package is internal to the transcoder.
package types
