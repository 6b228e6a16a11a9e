// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go mksyscall.go
//go:generate go run golang.org/x/tools/cmd/goimports -w zsyscall_windows.go

//sys clsidFromProgID(progID *uint16, clsid *CLSID) (hr cevigoes.HRESULT) = ole32.CLSIDFromProgID
//sys clsidFromString(str *uint16, clsid *CLSID) (hr cevigoes.HRESULT) = ole32.CLSIDFromString
//sys coCreateInstance(clsid *CLSID, unkOuter *IUnknownABI, clsctx coCLSCTX, iid *IID, ppv **IUnknownABI) (hr cevigoes.HRESULT) = ole32.CoCreateInstance
//sys coInitializeEx(reserved uintptr, flags uint32) (hr cevigoes.HRESULT) = ole32.CoInitializeEx
//sys coUninitialize() = ole32.CoUninitialize
//sys getActiveObject(clsid *CLSID, reserved uintptr, ppunk **IUnknownABI) (hr cevigoes.HRESULT) = oleaut32.GetActiveObject
