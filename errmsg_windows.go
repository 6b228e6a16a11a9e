// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package cevigoes

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

func hresultMessage(hr HRESULT) string {
	buf := make([]uint16, 300)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		uint32(hr),
		0, // LANGID 0 == use the best available language
		buf,
		nil,
	)
	if err != nil || n == 0 {
		return fmt.Sprintf("HRESULT(0x%08X)", uint32(hr))
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n]))
}
