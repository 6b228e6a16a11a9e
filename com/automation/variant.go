// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

import (
	"unsafe"

	"github.com/rindou-h/cevigoes"
)

// VT is a VARIANT type tag. Only the tags this module actually exchanges
// with the host are defined; the automation ABI's full tag space is much
// larger.
type VT uint16

const (
	VT_EMPTY   VT = 0x0000
	VT_NULL    VT = 0x0001
	VT_I4      VT = 0x0003
	VT_BSTR    VT = 0x0008
	VT_BOOL    VT = 0x000B
	VT_VARIANT VT = 0x000C
	VT_ARRAY   VT = 0x2000
	VT_BYREF   VT = 0x4000
)

const (
	variantTrue  int64 = -1 // VARIANT_TRUE, all 16 bits set
	variantFalse int64 = 0
)

// Variant is the COM VARIANT tagged union in its 64-bit Windows layout.
// The tag and payload are always set together by the constructors below;
// nothing reads Val under an assumed tag, extraction goes through
// VariantChangeType instead.
type Variant struct {
	VT         VT
	wReserved1 uint16
	wReserved2 uint16
	wReserved3 uint16
	Val        int64
	_          [8]byte
}

// NullVariant returns a VT_NULL value, used for host parameters that accept
// "no value".
func NullVariant() Variant {
	return Variant{VT: VT_NULL}
}

// NewInt32 returns a VT_I4 value holding n.
func NewInt32(n int32) Variant {
	return Variant{VT: VT_I4, Val: int64(n)}
}

// NewBool returns a VT_BOOL value holding b in the VARIANT_BOOL encoding.
func NewBool(b bool) Variant {
	val := variantFalse
	if b {
		val = variantTrue
	}
	return Variant{VT: VT_BOOL, Val: val}
}

// NewString returns a VT_BSTR value owning a freshly allocated copy of s.
// The allocation is released by Clear.
func NewString(s string) Variant {
	bs := NewBSTR(s)
	return Variant{VT: VT_BSTR, Val: int64(bs)}
}

// NewByRef returns a VT_BYREF|VT_VARIANT value pointing at v, for arguments
// the callee mutates in place. v must stay reachable for the duration of the
// call.
func NewByRef(v *Variant) Variant {
	return Variant{VT: VT_BYREF | VT_VARIANT, Val: int64(uintptr(unsafe.Pointer(v)))}
}

// NewArray returns a VT_ARRAY|VT_VARIANT value wrapping psa. Ownership of
// the array transfers to the Variant.
func NewArray(psa *SafeArray) Variant {
	return Variant{VT: VT_ARRAY | VT_VARIANT, Val: int64(uintptr(unsafe.Pointer(psa)))}
}

// ToInt32 coerces v to VT_I4 and returns the payload. The host is free to
// hand back any tag it likes, so the read always goes through
// VariantChangeType on a fresh copy, which is cleared before returning.
func (v *Variant) ToInt32() (int32, error) {
	var dst Variant
	variantInit(&dst)
	if hr := variantChangeType(&dst, v, 0, VT_I4); hr.Failed() {
		return 0, cevigoes.ErrorFromHRESULT(hr)
	}
	n := int32(dst.Val)
	if err := dst.Clear(); err != nil {
		return 0, err
	}
	return n, nil
}

// ToString coerces v to VT_BSTR and returns the payload as a Go string.
func (v *Variant) ToString() (string, error) {
	var dst Variant
	variantInit(&dst)
	if hr := variantChangeType(&dst, v, 0, VT_BSTR); hr.Failed() {
		return "", cevigoes.ErrorFromHRESULT(hr)
	}
	bs := BSTR(dst.Val)
	s := bs.String()
	// Clear releases the coerced copy's BSTR; s is already a Go copy.
	if err := dst.Clear(); err != nil {
		return "", err
	}
	return s, nil
}

// ToBool coerces v to VT_BOOL and returns the payload.
func (v *Variant) ToBool() (bool, error) {
	var dst Variant
	variantInit(&dst)
	if hr := variantChangeType(&dst, v, 0, VT_BOOL); hr.Failed() {
		return false, cevigoes.ErrorFromHRESULT(hr)
	}
	b := dst.Val != variantFalse
	if err := dst.Clear(); err != nil {
		return false, err
	}
	return b, nil
}

// Clear releases whatever resources the value owns (BSTR text, arrays,
// wrapped interfaces) and resets it to VT_EMPTY. Clearing a scalar or an
// already-cleared value is a no-op that succeeds.
func (v *Variant) Clear() error {
	if hr := variantClear(v); hr.Failed() {
		return cevigoes.ErrorFromHRESULT(hr)
	}
	return nil
}
