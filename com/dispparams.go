// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"github.com/rindou-h/cevigoes/com/automation"
)

// propertyPutNamedArgs is shared by every property-put invocation; the ABI
// only ever reads it.
var propertyPutNamedArgs = dispidPropertyPut

// methodParams builds the DISPPARAMS for a method call. The automation ABI
// wants arguments right to left, so the caller's natural order is reversed
// here; skipping the reversal misroutes every argument.
func methodParams(args []automation.Variant) *dispParams {
	if len(args) == 0 {
		return &dispParams{}
	}

	rev := make([]automation.Variant, len(args))
	for i, a := range args {
		rev[len(args)-1-i] = a
	}
	return &dispParams{
		args:  &rev[0],
		cArgs: uint32(len(rev)),
	}
}

// getParams builds the DISPPARAMS for a property read, with an optional
// index parameter for parameterized properties.
func getParams(index *automation.Variant) *dispParams {
	if index == nil {
		return &dispParams{}
	}

	args := []automation.Variant{*index}
	return &dispParams{
		args:  &args[0],
		cArgs: 1,
	}
}

// putParams builds the DISPPARAMS for a property write. The value being
// assigned is the single named argument tagged DISPID_PROPERTYPUT, with any
// index parameter ahead of it in the list; without that tag the host would
// read the value as an extra positional argument.
func putParams(index *automation.Variant, value automation.Variant) *dispParams {
	var args []automation.Variant
	if index != nil {
		args = append(args, *index)
	}
	args = append(args, value)

	return &dispParams{
		args:       &args[0],
		namedArgs:  &propertyPutNamedArgs,
		cArgs:      uint32(len(args)),
		cNamedArgs: 1,
	}
}
