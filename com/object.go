// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package com

import (
	"fmt"
	"unsafe"

	"github.com/rindou-h/cevigoes"
	"github.com/rindou-h/cevigoes/com/automation"
	"golang.org/x/sys/windows"
)

// Object wraps exactly one automation interface reference and exposes the
// late-binding protocol against it: member-name resolution plus generic
// method, property-get and property-put invocation. Objects are not safe for
// use from threads other than the one that created them.
type Object struct {
	disp *IDispatchABI

	// dispIDs caches name resolutions for this handle. DISPIDs are only
	// meaningful relative to the object that produced them, so the cache
	// lives and dies with the Object; the first use of each name still
	// goes through the host.
	dispIDs map[string]DISPID
}

func newObject(disp *IDispatchABI) *Object {
	return &Object{
		disp:    disp,
		dispIDs: make(map[string]DISPID),
	}
}

// CreateObject creates a new instance of the automation class named by id,
// which is either a ProgID or a class-identifier string in registry format.
// In-process activation is attempted first, then a local (out-of-process)
// server.
func CreateObject(id string) (*Object, error) {
	clsid, err := ResolveClassID(id)
	if err != nil {
		return nil, err
	}

	var punk *IUnknownABI
	hr := coCreateInstance(clsid, nil, coCLSCTX_INPROC_SERVER, IID_IDispatch, &punk)
	if hr.Failed() {
		hr = coCreateInstance(clsid, nil, coCLSCTX_LOCAL_SERVER, IID_IDispatch, &punk)
	}
	if hr.Failed() {
		return nil, fmt.Errorf("creating instance of %q: %w", id, cevigoes.ErrorFromHRESULT(hr))
	}

	return newObject((*IDispatchABI)(unsafe.Pointer(punk))), nil
}

// ActiveObject attaches to an already-running instance of the automation
// class named by id. When no instance is registered as running it returns
// (nil, nil); a running instance that does not support automation is an
// error.
func ActiveObject(id string) (*Object, error) {
	clsid, err := ResolveClassID(id)
	if err != nil {
		return nil, err
	}

	var punk *IUnknownABI
	hr := getActiveObject(clsid, 0, &punk)
	if hr == hrMK_E_UNAVAILABLE {
		return nil, nil
	}
	if hr.Failed() {
		return nil, fmt.Errorf("attaching to %q: %w", id, cevigoes.ErrorFromHRESULT(hr))
	}

	pdisp, err := punk.QueryInterface(IID_IDispatch)
	punk.Release()
	if err != nil {
		return nil, fmt.Errorf("%q is running but does not support automation: %w", id, err)
	}

	return newObject((*IDispatchABI)(unsafe.Pointer(pdisp))), nil
}

// ResolveClassID resolves a ProgID, or a {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
// class-identifier string, to a CLSID via the registry.
func ResolveClassID(id string) (*CLSID, error) {
	pid, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return nil, fmt.Errorf("resolving class identifier %q: %w", id, err)
	}

	var clsid CLSID
	if hr := clsidFromProgID(pid, &clsid); hr.Succeeded() {
		return &clsid, nil
	}
	if hr := clsidFromString(pid, &clsid); hr.Failed() {
		return nil, fmt.Errorf("resolving class identifier %q: %w", id, cevigoes.ErrorFromHRESULT(hr))
	}
	return &clsid, nil
}

// Close releases the underlying interface reference. The Object must not be
// used afterward.
func (o *Object) Close() error {
	if o.disp != nil {
		o.disp.Release()
		o.disp = nil
	}
	return nil
}

func (o *Object) dispID(name string) (DISPID, error) {
	if id, ok := o.dispIDs[name]; ok {
		return id, nil
	}

	id, err := o.disp.GetIDsOfNames(name, localeUserDefault)
	if err != nil {
		return 0, fmt.Errorf("member %q not found: %w", name, err)
	}
	o.dispIDs[name] = id
	return id, nil
}

// GetProperty reads the property called name, with an optional index
// parameter for parameterized properties. The caller owns the returned
// Variant and must Clear it.
func (o *Object) GetProperty(name string, index *automation.Variant) (automation.Variant, error) {
	id, err := o.dispID(name)
	if err != nil {
		return automation.Variant{}, err
	}

	result, err := o.disp.Invoke(id, dispatchPropertyGet, getParams(index), localeSystemDefault)
	if err != nil {
		return automation.Variant{}, fmt.Errorf("getting property %q: %w", name, err)
	}
	return result, nil
}

// PutProperty writes value to the property called name, with an optional
// index parameter. The caller retains ownership of value and index.
func (o *Object) PutProperty(name string, index *automation.Variant, value automation.Variant) error {
	id, err := o.dispID(name)
	if err != nil {
		return err
	}

	result, err := o.disp.Invoke(id, dispatchPropertyPut, putParams(index, value), localeSystemDefault)
	if err != nil {
		return fmt.Errorf("putting property %q: %w", name, err)
	}
	result.Clear()
	return nil
}

// CallMethod invokes the method called name with args in natural caller
// order. The caller retains ownership of args and owns the returned Variant.
func (o *Object) CallMethod(name string, args ...automation.Variant) (automation.Variant, error) {
	id, err := o.dispID(name)
	if err != nil {
		return automation.Variant{}, err
	}

	result, err := o.disp.Invoke(id, dispatchMethod, methodParams(args), localeSystemDefault)
	if err != nil {
		return automation.Variant{}, fmt.Errorf("calling method %q: %w", name, err)
	}
	return result, nil
}
