package wire

import (
	"math"
	"testing"
)

func TestSafeMulInt64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   int64
		wantOK bool
	}{
		{"zero * zero", 0, 0, 0, true},
		{"zero * max", 0, math.MaxInt64, 0, true},
		{"max * zero", math.MaxInt64, 0, 0, true},
		{"small * small", 100, 200, 20000, true},
		{"max * one", math.MaxInt64, 1, math.MaxInt64, true},
		{"overflow", math.MaxInt64, 2, 0, false},
		{"overflow symmetric", 2, math.MaxInt64, 0, false},
		{"negative", -1, 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeMulInt64(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeMulInt64(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeMulInt64(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeAddInt64(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int64
		want   int64
		wantOK bool
	}{
		{"zero", 0, 0, 0, true},
		{"small", 40, 2, 42, true},
		{"edge", math.MaxInt64 - 1, 1, math.MaxInt64, true},
		{"overflow", math.MaxInt64, 1, 0, false},
		{"negative", 5, -6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeAddInt64(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeAddInt64(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeAddInt64(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "nil"},
		{"int32", int32(42), "int32"},
		{"string", "hello", "string"},
		{"bool", true, "bool"},
		{"pointer", new(int), "*int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.input); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
