// Package dat reads .dat table containers.
//
// A container is laid out as:
//
//	offset  size              content
//	──────────────────────────────────────────
//	0       4                 row count (uint32 LE)
//	4       count * width     rows
//	base    8                 0xBB x 8
//	base+8  ...               heap
//
// The row width is not stored; it is (base-4)/count. Heap offsets found in
// rows are relative to base, the position of the marker.
package dat
