// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"github.com/rindou-h/cevigoes"
)

// IUnknownABI is the ABI of a COM interface reference: a pointer to a
// vtable whose first three slots are QueryInterface, AddRef and Release.
type IUnknownABI struct {
	Vtbl *uintptr
}

func (abi *IUnknownABI) QueryInterface(iid *IID) (*IUnknownABI, error) {
	var ppv *IUnknownABI
	method := unsafe.Slice(abi.Vtbl, 3)[0]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&ppv)),
	)
	if e := cevigoes.ErrorFromHRESULT(cevigoes.HRESULT(rc)); e.Failed() {
		return nil, e
	}

	return ppv, nil
}

func (abi *IUnknownABI) AddRef() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[1]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)
	return uint32(rc)
}

func (abi *IUnknownABI) Release() uint32 {
	method := unsafe.Slice(abi.Vtbl, 3)[2]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
	)
	return uint32(rc)
}
