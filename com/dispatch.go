// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"github.com/rindou-h/cevigoes"
	"github.com/rindou-h/cevigoes/com/automation"
	"golang.org/x/sys/windows"
)

// IDispatchABI is the ABI of the IDispatch automation interface. Its vtable
// extends IUnknown's with GetTypeInfoCount, GetTypeInfo, GetIDsOfNames and
// Invoke.
type IDispatchABI struct {
	IUnknownABI
}

// GetIDsOfNames resolves a single member name to its DISPID under lcid.
func (abi *IDispatchABI) GetIDsOfNames(name string, lcid uint32) (DISPID, error) {
	pname, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}

	var id DISPID
	method := unsafe.Slice(abi.Vtbl, 7)[5]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(unsafe.Pointer(&guidNull)),
		uintptr(unsafe.Pointer(&pname)),
		1,
		uintptr(lcid),
		uintptr(unsafe.Pointer(&id)),
	)
	if e := cevigoes.ErrorFromHRESULT(cevigoes.HRESULT(rc)); e.Failed() {
		return 0, e
	}

	return id, nil
}

// Invoke performs a generic invocation against a resolved DISPID, requesting
// a single result value. Exception info and the argument-error index are not
// requested; a failure surfaces only the raw HRESULT.
func (abi *IDispatchABI) Invoke(id DISPID, flags dispatchFlags, params *dispParams, lcid uint32) (automation.Variant, error) {
	var result automation.Variant
	method := unsafe.Slice(abi.Vtbl, 7)[6]

	rc, _, _ := syscall.SyscallN(
		method,
		uintptr(unsafe.Pointer(abi)),
		uintptr(uint32(id)),
		uintptr(unsafe.Pointer(&guidNull)),
		uintptr(lcid),
		uintptr(flags),
		uintptr(unsafe.Pointer(params)),
		uintptr(unsafe.Pointer(&result)),
		0, // pExcepInfo
		0, // puArgErr
	)
	if e := cevigoes.ErrorFromHRESULT(cevigoes.HRESULT(rc)); e.Failed() {
		return result, e
	}

	return result, nil
}
