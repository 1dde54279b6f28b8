// Package layout computes record-region widths and field offsets for .dat rows.
//
// # Layout Rules
//
// Fields are packed back to back with no padding:
//   - Fields stored by pointer occupy a 4-byte heap offset slot, or the
//     8-byte count and offset header for lists
//   - Primitives stored inline occupy their natural width (bool=1, int=4, ...)
//   - Pointers stored inline are transparent: ref|list|T takes the 8-byte
//     list header, ref|ref|T a 4-byte offset, ref|long 8 bytes
//   - Strings and lists cannot be stored inline
//
// # Usage
//
//	info, err := layout.NewCalculator().Record(slots)
//	// info.Size, info.Offsets available
//
// This package is internal to the transcoder.
package layout
