// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"fmt"

	"github.com/rindou-h/cevigoes"
)

// Runtime keeps the COM runtime initialized on the calling thread in
// single-threaded apartment mode, from StartRuntime until Close. Objects
// created or attached while it is held must only be used from that same
// thread, and never after Close; lock the goroutine to its OS thread before
// starting the runtime.
type Runtime struct {
	closed bool
}

// StartRuntime initializes the COM runtime for the current thread. A thread
// already initialized in a compatible mode is fine (S_FALSE); a thread
// already initialized in multithreaded mode is not, and surfaces as an
// initialization error.
func StartRuntime() (*Runtime, error) {
	hr := coInitializeEx(0, uint32(coINIT_APARTMENTTHREADED|coINIT_DISABLE_OLE1DDE))
	if hr.Failed() {
		return nil, fmt.Errorf("initializing COM runtime: %w", cevigoes.ErrorFromHRESULT(hr))
	}
	return &Runtime{}, nil
}

// Close uninitializes the COM runtime on the calling thread. It is
// best-effort and idempotent.
func (rt *Runtime) Close() error {
	if rt.closed {
		return nil
	}
	rt.closed = true
	coUninitialize()
	return nil
}
