// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

import (
	"math"
	"testing"
)

func TestInt32RoundTrip(t *testing.T) {
	for _, want := range []int32{0, 1, -1, 100, math.MinInt32, math.MaxInt32} {
		v := NewInt32(want)
		if v.VT != VT_I4 {
			t.Fatalf("NewInt32(%d) tag got 0x%04X, want VT_I4", want, uint16(v.VT))
		}
		got, err := v.ToInt32()
		if err != nil {
			t.Fatalf("ToInt32(%d): %v", want, err)
		}
		if got != want {
			t.Errorf("round trip got %d, want %d", got, want)
		}
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, want := range []bool{true, false} {
		v := NewBool(want)
		if v.VT != VT_BOOL {
			t.Fatalf("NewBool(%v) tag got 0x%04X, want VT_BOOL", want, uint16(v.VT))
		}
		got, err := v.ToBool()
		if err != nil {
			t.Fatalf("ToBool(%v): %v", want, err)
		}
		if got != want {
			t.Errorf("round trip got %v, want %v", got, want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, want := range []string{"", "hello", "さとうさらら", "CeVIO AI"} {
		v := NewString(want)
		if v.VT != VT_BSTR {
			t.Fatalf("NewString(%q) tag got 0x%04X, want VT_BSTR", want, uint16(v.VT))
		}
		got, err := v.ToString()
		if err != nil {
			t.Fatalf("ToString(%q): %v", want, err)
		}
		if got != want {
			t.Errorf("round trip got %q, want %q", got, want)
		}
		if err := v.Clear(); err != nil {
			t.Fatalf("Clear(%q): %v", want, err)
		}
	}
}

// Extraction coerces through VariantChangeType, so a numeric string is a
// valid source for an int32 read.
func TestCoercion(t *testing.T) {
	v := NewString("42")
	defer v.Clear()
	got, err := v.ToInt32()
	if err != nil {
		t.Fatalf("ToInt32: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	n := NewInt32(5)
	b, err := n.ToBool()
	if err != nil {
		t.Fatalf("ToBool: %v", err)
	}
	if !b {
		t.Errorf("ToBool(5) got false, want true")
	}
}

func TestCoercionFailure(t *testing.T) {
	v := NewString("not a number at all")
	defer v.Clear()
	if _, err := v.ToInt32(); err == nil {
		t.Error("ToInt32 on non-numeric text: got nil error")
	}
	// The source value must be intact after a failed coercion.
	s, err := v.ToString()
	if err != nil {
		t.Fatalf("ToString after failed coercion: %v", err)
	}
	if s != "not a number at all" {
		t.Errorf("source corrupted by failed coercion: %q", s)
	}

	null := NullVariant()
	if _, err := null.ToInt32(); err == nil {
		t.Error("ToInt32 on VT_NULL: got nil error")
	}
}

func TestClear(t *testing.T) {
	v := NewString("owned text")
	if err := v.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if v.VT != VT_EMPTY {
		t.Errorf("tag after Clear got 0x%04X, want VT_EMPTY", uint16(v.VT))
	}
	// Clearing twice must be harmless.
	if err := v.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestByRefTag(t *testing.T) {
	inner := NewInt32(7)
	v := NewByRef(&inner)
	if v.VT != VT_BYREF|VT_VARIANT {
		t.Errorf("tag got 0x%04X, want VT_BYREF|VT_VARIANT", uint16(v.VT))
	}
}
