// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package cevio

import "fmt"

// Error is the one error type this package returns. Op names the facade
// operation, Member the automation member involved when one was; the cause
// chain underneath carries the resolution, invocation or coercion detail.
// Callers are not expected to branch on anything finer than this.
type Error struct {
	Op     string
	Member string
	Err    error
}

func (e *Error) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("cevio: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cevio: %s: member %s: %v", e.Op, e.Member, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
