package wire

import (
	"math"
	"reflect"
)

// SafeMulInt64 multiplies non-negative operands, reporting overflow.
func SafeMulInt64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// SafeAddInt64 adds non-negative operands, reporting overflow.
func SafeAddInt64(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

const (
	MaxStringUnits = 1 << 24 // 16M UTF-16 code units
	MaxListLength  = 1 << 24 // 16M elements
)
