// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"github.com/rindou-h/cevigoes"
	"github.com/rindou-h/cevigoes/com/automation"
	"golang.org/x/sys/windows"
)

// IID is a GUID that represents an interface ID.
type IID windows.GUID

// CLSID is a GUID that represents a class ID.
type CLSID windows.GUID

// DISPID is the numeric identifier an automation object assigns to one of
// its named members. It is only meaningful against the object instance that
// produced it.
type DISPID int32

var (
	IID_IUnknown  = &IID{0x00000000, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IID_IDispatch = &IID{0x00020400, 0x0000, 0x0000, [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}

	// guidNull is IID_NULL, the required riid argument of GetIDsOfNames and
	// Invoke.
	guidNull = IID{}
)

type coCLSCTX uint32

const (
	// Combinations of these values are intentionally not defined; callers
	// pick one activation context at a time.
	coCLSCTX_INPROC_SERVER = coCLSCTX(0x1)
	coCLSCTX_LOCAL_SERVER  = coCLSCTX(0x4)
	coCLSCTX_REMOTE_SERVER = coCLSCTX(0x10)
)

type coINIT uint32

const (
	coINIT_APARTMENTTHREADED = coINIT(0x2)
	coINIT_DISABLE_OLE1DDE   = coINIT(0x4)
)

const (
	// localeUserDefault is the LCID member names are resolved under;
	// localeSystemDefault is the LCID invocations run under. The split
	// mirrors what the host expects.
	localeUserDefault   = 0x0400
	localeSystemDefault = 0x0800
)

type dispatchFlags uint16

const (
	dispatchMethod      = dispatchFlags(0x1)
	dispatchPropertyGet = dispatchFlags(0x2)
	dispatchPropertyPut = dispatchFlags(0x4)
)

// dispidPropertyPut is the reserved named-argument identifier that marks the
// value being assigned in a property-put invocation.
const dispidPropertyPut = DISPID(-3)

// dispParams is the DISPPARAMS structure of the automation ABI. args points
// at the first of cArgs Variants, ordered right to left.
type dispParams struct {
	args       *automation.Variant
	namedArgs  *DISPID
	cArgs      uint32
	cNamedArgs uint32
}

const (
	hrMK_E_UNAVAILABLE   = cevigoes.HRESULT(-((0x800401E3 ^ 0xFFFFFFFF) + 1))
	hrCO_E_CLASSSTRING   = cevigoes.HRESULT(-((0x800401F3 ^ 0xFFFFFFFF) + 1))
	hrDISP_E_UNKNOWNNAME = cevigoes.HRESULT(-((0x80020006 ^ 0xFFFFFFFF) + 1))
)
