// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

import (
	"testing"
)

func TestBSTR(t *testing.T) {
	bs := NewBSTR("flower")
	if bs.IsNil() {
		t.Fatal("NewBSTR returned nil BSTR")
	}
	if got := bs.Len(); got != 6 {
		t.Errorf("Len got %d, want 6", got)
	}
	if got := bs.String(); got != "flower" {
		t.Errorf("String got %q, want %q", got, "flower")
	}

	clone := bs.Clone()
	if err := bs.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !bs.IsNil() {
		t.Error("BSTR not nil after Close")
	}
	if got := clone.String(); got != "flower" {
		t.Errorf("clone String got %q, want %q", got, "flower")
	}
	if err := clone.Close(); err != nil {
		t.Fatalf("clone Close: %v", err)
	}
}

func TestBSTREmpty(t *testing.T) {
	bs := NewBSTR("")
	if got := bs.Len(); got != 0 {
		t.Errorf("Len got %d, want 0", got)
	}
	if got := bs.String(); got != "" {
		t.Errorf("String got %q, want empty", got)
	}
	bs.Close()
}
