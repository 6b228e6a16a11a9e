// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cevigoes

// HRESULT is equivalent to the HRESULT type in the Win32 SDK for C/C++.
type HRESULT int32

type hrFacility uint16
type hrCode uint16

const (
	hrFailBit       = 0x80000000
	hrCustomerBit   = 0x20000000
	hrFacilityNTBit = 0x10000000
	hrFacilityMask  = 0x1FFF0000
	hrCodeMask      = 0x0000FFFF
)

const (
	hrS_OK    = HRESULT(0)
	hrS_FALSE = HRESULT(1)
	// Success codes never carry facility information, so the only well-known
	// failure codes live here. Packages that need additional codes define
	// their own local constants.
	hrE_ABORT                = HRESULT(-((0x80004004 ^ 0xFFFFFFFF) + 1))
	hrE_FAIL                 = HRESULT(-((0x80004005 ^ 0xFFFFFFFF) + 1))
	hrE_NOINTERFACE          = HRESULT(-((0x80004002 ^ 0xFFFFFFFF) + 1))
	hrE_NOTIMPL              = HRESULT(-((0x80004001 ^ 0xFFFFFFFF) + 1))
	hrE_POINTER              = HRESULT(-((0x80004003 ^ 0xFFFFFFFF) + 1))
	hrE_UNEXPECTED           = HRESULT(-((0x8000FFFF ^ 0xFFFFFFFF) + 1))
	hrTYPE_E_ELEMENTNOTFOUND = HRESULT(-((0x8002802B ^ 0xFFFFFFFF) + 1))
)

// Succeeded returns true when hr is successful, but its actual error code
// may vary.
func (hr HRESULT) Succeeded() bool {
	return hr >= 0
}

// Failed returns true when hr contains a failure code.
func (hr HRESULT) Failed() bool {
	return hr < 0
}

func (hr HRESULT) isNT() bool {
	return (uint32(hr)&(hrFailBit|hrFacilityNTBit)) == (hrFailBit|hrFacilityNTBit) && !hr.isCustomer()
}

func (hr HRESULT) isCustomer() bool {
	return (uint32(hr) & hrCustomerBit) != 0
}

// facility is only meaningful when neither the NT nor the customer bits are
// in play.
func (hr HRESULT) facility() hrFacility {
	return hrFacility((uint32(hr) & hrFacilityMask) >> 16)
}

func (hr HRESULT) code() hrCode {
	return hrCode(uint32(hr) & hrCodeMask)
}
