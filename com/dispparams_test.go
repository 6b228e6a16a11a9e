// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"testing"
	"unsafe"

	"github.com/rindou-h/cevigoes/com/automation"
)

func paramSlice(p *dispParams) []automation.Variant {
	if p.args == nil {
		return nil
	}
	return unsafe.Slice(p.args, p.cArgs)
}

func TestMethodParamsReversed(t *testing.T) {
	args := []automation.Variant{
		automation.NewInt32(1),
		automation.NewInt32(2),
		automation.NewInt32(3),
	}

	p := methodParams(args)
	if p.cArgs != 3 {
		t.Fatalf("cArgs got %d, want 3", p.cArgs)
	}
	if p.cNamedArgs != 0 || p.namedArgs != nil {
		t.Fatal("method call must not carry named arguments")
	}

	// Caller order [1 2 3] must be laid out right to left: [3 2 1].
	for i, want := range []int32{3, 2, 1} {
		got, err := paramSlice(p)[i].ToInt32()
		if err != nil {
			t.Fatalf("arg %d: %v", i, err)
		}
		if got != want {
			t.Errorf("arg %d got %d, want %d", i, got, want)
		}
	}
}

func TestMethodParamsEmpty(t *testing.T) {
	p := methodParams(nil)
	if p.args != nil || p.cArgs != 0 {
		t.Errorf("empty call built %d args", p.cArgs)
	}
}

func TestGetParams(t *testing.T) {
	if p := getParams(nil); p.args != nil || p.cArgs != 0 {
		t.Errorf("indexless get built %d args", p.cArgs)
	}

	index := automation.NewInt32(2)
	p := getParams(&index)
	if p.cArgs != 1 {
		t.Fatalf("cArgs got %d, want 1", p.cArgs)
	}
	got, err := paramSlice(p)[0].ToInt32()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("index got %d, want 2", got)
	}
}

func TestPutParams(t *testing.T) {
	value := automation.NewInt32(42)

	p := putParams(nil, value)
	if p.cArgs != 1 || p.cNamedArgs != 1 {
		t.Fatalf("cArgs/cNamedArgs got %d/%d, want 1/1", p.cArgs, p.cNamedArgs)
	}
	if *p.namedArgs != dispidPropertyPut {
		t.Errorf("named arg got %d, want DISPID_PROPERTYPUT (%d)", *p.namedArgs, dispidPropertyPut)
	}
	if got, _ := paramSlice(p)[0].ToInt32(); got != 42 {
		t.Errorf("put value got %d, want 42", got)
	}
}

func TestPutParamsWithIndex(t *testing.T) {
	index := automation.NewInt32(7)
	value := automation.NewInt32(42)

	p := putParams(&index, value)
	if p.cArgs != 2 || p.cNamedArgs != 1 {
		t.Fatalf("cArgs/cNamedArgs got %d/%d, want 2/1", p.cArgs, p.cNamedArgs)
	}
	if *p.namedArgs != dispidPropertyPut {
		t.Errorf("named arg got %d, want DISPID_PROPERTYPUT (%d)", *p.namedArgs, dispidPropertyPut)
	}

	// The index parameter sits ahead of the distinguished put value.
	args := paramSlice(p)
	if got, _ := args[0].ToInt32(); got != 7 {
		t.Errorf("args[0] got %d, want index 7", got)
	}
	if got, _ := args[1].ToInt32(); got != 42 {
		t.Errorf("args[1] got %d, want value 42", got)
	}
}
