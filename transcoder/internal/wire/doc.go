// Package wire provides internal utilities for .dat wire decoding.
//
// It holds overflow-checked offset arithmetic, decode limits and small
// helpers shared by the transcoder package.
//
// This package is internal to the transcoder.
package wire
