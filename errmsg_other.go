// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows

package cevigoes

import "fmt"

// Message tables live in the Windows loader; off-Windows we can only render
// the raw code.
func hresultMessage(hr HRESULT) string {
	return fmt.Sprintf("HRESULT(0x%08X)", uint32(hr))
}
