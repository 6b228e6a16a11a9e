// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import "runtime"

func init() {
	// COM is initialized apartment-threaded, so every call must come from
	// the thread that set it up.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
