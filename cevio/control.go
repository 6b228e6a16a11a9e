// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package cevio

import (
	"github.com/rindou-h/cevigoes/com/automation"
)

// StartHost launches the host application if it is not already running.
// With noWait the call returns as soon as the launch is under way and
// IsHostStarted tells when the host becomes reachable; otherwise it blocks
// until the host accepts external access.
//
// The returned code is the host's: 0 success (including already running),
// -1 unknown install state, -2 executable not found, -3 process launch
// failed, -4 the application exited with an error after starting.
func (c *CeVIO) StartHost(noWait bool) (int32, error) {
	res, err := c.controller.CallMethod("StartHost", automation.NewBool(noWait))
	if err != nil {
		return 0, &Error{Op: "StartHost", Member: "StartHost", Err: err}
	}
	defer res.Clear()

	code, err := res.ToInt32()
	if err != nil {
		return 0, &Error{Op: "StartHost", Member: "StartHost", Err: err}
	}
	return code, nil
}

// CloseHost asks the host application to exit. Mode 0 lets an editing host
// prompt to save or cancel.
func (c *CeVIO) CloseHost(mode int32) error {
	return c.callDiscard(c.controller, "CloseHost", "CloseHost", automation.NewInt32(mode))
}

// HostVersion returns the host application's version string.
func (c *CeVIO) HostVersion() (string, error) {
	return c.getString(c.controller, "HostVersion", "HostVersion")
}

// InterfaceVersion returns the version of the host's automation interface.
func (c *CeVIO) InterfaceVersion() (string, error) {
	return c.getString(c.controller, "InterfaceVersion", "InterfaceVersion")
}

// IsHostStarted reports whether the host application is reachable.
//
// Note that this reads the InterfaceVersion property and coerces it to a
// boolean rather than querying an IsHostStarted-style member, so it reports
// true whenever the host answers property reads at all. See DESIGN.md
// before changing the member it reads.
func (c *CeVIO) IsHostStarted() (bool, error) {
	return c.getBool(c.controller, "IsHostStarted", "InterfaceVersion")
}
