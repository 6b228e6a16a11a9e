// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// BSTR is the length-prefixed, UTF-16 string type used by OLE automation.
// A non-nil BSTR owns memory allocated by the OLE string allocator and must
// be freed via Close (or by transferring ownership into a Variant, whose
// Clear then frees it).
type BSTR uintptr

func NewBSTR(s string) BSTR {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return 0
	}
	return sysAllocString(p)
}

func NewBSTRFromUTF16Ptr(up *uint16) BSTR {
	return sysAllocString(up)
}

func (bs *BSTR) Len() uint32 {
	return sysStringLen(*bs)
}

func (bs *BSTR) String() string {
	return windows.UTF16ToString(bs.toUTF16())
}

// toUTF16 is unsafe for general use because it returns a pointer that is
// not managed by the Go GC.
func (bs *BSTR) toUTF16() []uint16 {
	return unsafe.Slice(bs.toUTF16Ptr(), bs.Len())
}

// toUTF16Ptr is unsafe for general use because it returns a pointer that is
// not managed by the Go GC.
func (bs *BSTR) toUTF16Ptr() *uint16 {
	return (*uint16)(unsafe.Pointer(*bs))
}

func (bs *BSTR) Clone() BSTR {
	return sysAllocStringLen(bs.toUTF16Ptr(), bs.Len())
}

func (bs *BSTR) IsNil() bool {
	return *bs == 0
}

func (bs *BSTR) Close() error {
	sysFreeString(*bs)
	*bs = 0
	return nil
}
