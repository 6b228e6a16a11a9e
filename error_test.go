// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cevigoes

import (
	"testing"
)

type hrTestCase struct {
	hr              HRESULT
	expectFacility  hrFacility // only valid when both expectNT and expectCustomer are false
	expectCode      hrCode     // only valid when both expectNT and expectCustomer are false
	expectSucceeded bool
	expectNT        bool
	expectCustomer  bool
}

var hrTestCases = []hrTestCase{
	{hrS_OK, 0, 0, true, false, false},
	{hrS_FALSE, 0, 1, true, false, false},
	{hrE_FAIL, 0, 0x4005, false, false, false},
	{hrTYPE_E_ELEMENTNOTFOUND, 2, 0x802B, false, false, false},
	{HRESULT(-((0xC0000022 ^ 0xFFFFFFFF) + 1)) | hrFacilityNTBit, 0, 0, false, true, false},
	{HRESULT(-((0xA0000001 ^ 0xFFFFFFFF) + 1)), 0, 0, false, false, true},
	{HRESULT(-((0xB0000001 ^ 0xFFFFFFFF) + 1)), 0, 0, false, false, true},
}

func TestHRESULT(t *testing.T) {
	for _, tc := range hrTestCases {
		hr := tc.hr
		if hr.Succeeded() != tc.expectSucceeded {
			t.Errorf("hr 0x%08X Succeeded() got %v, want %v", uint32(hr), hr.Succeeded(), tc.expectSucceeded)
		}
		if hr.Failed() == tc.expectSucceeded {
			t.Errorf("hr 0x%08X Failed() got %v, want %v", uint32(hr), hr.Failed(), !tc.expectSucceeded)
		}
		if hr.isNT() != tc.expectNT {
			t.Errorf("hr 0x%08X isNT() got %v, want %v", uint32(hr), hr.isNT(), tc.expectNT)
		}
		if hr.isCustomer() != tc.expectCustomer {
			t.Errorf("hr 0x%08X isCustomer() got %v, want %v", uint32(hr), hr.isCustomer(), tc.expectCustomer)
		}
		if !hr.isNT() && !hr.isCustomer() {
			if hr.facility() != tc.expectFacility {
				t.Errorf("hr 0x%08X facility() got %v, want %v", uint32(hr), hr.facility(), tc.expectFacility)
			}
			if hr.code() != tc.expectCode {
				t.Errorf("hr 0x%08X code() got %v, want %v", uint32(hr), hr.code(), tc.expectCode)
			}
		}
	}
}

func TestErrorRoundTrip(t *testing.T) {
	for _, hr := range []HRESULT{hrS_OK, hrE_FAIL, hrE_NOINTERFACE, hrE_UNEXPECTED} {
		e := ErrorFromHRESULT(hr)
		if e.AsHRESULT() != hr {
			t.Errorf("AsHRESULT got 0x%08X, want 0x%08X", uint32(e.AsHRESULT()), uint32(hr))
		}
		if e.Failed() != hr.Failed() {
			t.Errorf("hr 0x%08X Error.Failed() got %v, want %v", uint32(hr), e.Failed(), hr.Failed())
		}
		if msg := e.Error(); msg == "" {
			t.Errorf("hr 0x%08X produced an empty message", uint32(hr))
		}
	}
}
