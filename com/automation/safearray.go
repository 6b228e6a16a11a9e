// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package automation

// SafeArrayBound describes one dimension of a SafeArray.
type SafeArrayBound struct {
	Elements   uint32
	LowerBound int32
}

// SafeArray is the automation array header. Instances are produced by the
// host and only ever handled here by pointer, packed into a Variant via
// NewArray; the fields are never dereferenced on this side.
type SafeArray struct {
	Dimensions   uint16
	FeaturesFlag uint16
	ElementsSize uint32
	LocksAmount  uint32
	Data         uint32
	Bounds       [16]byte
}
