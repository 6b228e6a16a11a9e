// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"strings"
	"testing"

	"github.com/rindou-h/cevigoes/cevio"
)

func TestParseProduct(t *testing.T) {
	cases := []struct {
		name    string
		want    cevio.Product
		wantErr bool
	}{
		{name: "cevio-ai", want: cevio.CevioAI},
		{name: "cevio-cs", want: cevio.CevioCS},
		{name: "voiceroid", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tc := range cases {
		p, err := parseProduct(tc.name)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseProduct(%q): expected error, got %v", tc.name, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseProduct(%q): %v", tc.name, err)
			continue
		}
		if p != tc.want {
			t.Errorf("parseProduct(%q): got %v, want %v", tc.name, p, tc.want)
		}
	}
}

func TestStartHostError(t *testing.T) {
	for _, code := range []int32{-1, -2, -3, -4, -99} {
		err := startHostError(code)
		if err == nil {
			t.Fatalf("startHostError(%d): expected error", code)
		}
		if !strings.Contains(err.Error(), "host start failed") {
			t.Errorf("startHostError(%d): unexpected message %q", code, err.Error())
		}
	}
}
