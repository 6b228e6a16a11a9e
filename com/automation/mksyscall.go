// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go mksyscall.go
//go:generate go run golang.org/x/tools/cmd/goimports -w zsyscall_windows.go

//sys sysAllocString(str *uint16) (bs BSTR) = oleaut32.SysAllocString
//sys sysAllocStringLen(str *uint16, length uint32) (bs BSTR) = oleaut32.SysAllocStringLen
//sys sysFreeString(bs BSTR) = oleaut32.SysFreeString
//sys sysStringLen(bs BSTR) (length uint32) = oleaut32.SysStringLen
//sys variantInit(v *Variant) = oleaut32.VariantInit
//sys variantClear(v *Variant) (hr cevigoes.HRESULT) = oleaut32.VariantClear
//sys variantChangeType(dst *Variant, src *Variant, flags uint16, vt VT) (hr cevigoes.HRESULT) = oleaut32.VariantChangeType
