// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

// Package cevio drives the CeVIO Creative Studio and CeVIO AI speech
// synthesizers through their COM automation interfaces.
//
// Typical use:
//
//	c, err := cevio.New(cevio.CevioAI)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	if _, err := c.StartHost(false); err != nil {
//		return err
//	}
//	if err := c.SetCast("さとうささら"); err != nil {
//		return err
//	}
//	if err := c.SetVolume(100); err != nil {
//		return err
//	}
//	return c.Speak("初めまして。")
//
// The host talks COM in a single-threaded apartment: create the CeVIO value
// and make every call on one OS-locked thread.
package cevio

import (
	"github.com/rindou-h/cevigoes/com"
	"github.com/rindou-h/cevigoes/com/automation"
)

// Product selects which host application's automation classes to bind.
type Product int

const (
	// CevioAI is the CeVIO AI product line.
	CevioAI Product = iota
	// CevioCS is classic CeVIO Creative Studio.
	CevioCS
)

func (p Product) String() string {
	switch p {
	case CevioAI:
		return "CeVIO AI"
	case CevioCS:
		return "CeVIO Creative Studio"
	default:
		return "unknown product"
	}
}

func (p Product) talkerID() string {
	if p == CevioCS {
		return "CeVIO.Talk.RemoteService.Talker"
	}
	return "CeVIO.Talk.RemoteService2.Talker2"
}

func (p Product) serviceControlID() string {
	if p == CevioCS {
		return "CeVIO.Talk.RemoteService.ServiceControl"
	}
	return "CeVIO.Talk.RemoteService2.ServiceControl2"
}

// invoker is the slice of com.Object the facade needs: name-based property
// and method access. Keeping the facade off the raw handle representation
// also makes it testable without a host.
type invoker interface {
	GetProperty(name string, index *automation.Variant) (automation.Variant, error)
	PutProperty(name string, index *automation.Variant, value automation.Variant) error
	CallMethod(name string, args ...automation.Variant) (automation.Variant, error)
	Close() error
}

var _ invoker = (*com.Object)(nil)

// CeVIO is a live binding to one product's talker and service-control
// automation objects. It owns the COM runtime guard and both objects; all
// three are released together by Close.
type CeVIO struct {
	rt         *com.Runtime
	talker     invoker
	controller invoker
}

// New initializes COM on the calling thread and binds the talker and
// service-control classes of p.
func New(p Product) (*CeVIO, error) {
	rt, err := com.StartRuntime()
	if err != nil {
		return nil, &Error{Op: "New", Err: err}
	}

	talker, err := com.CreateObject(p.talkerID())
	if err != nil {
		rt.Close()
		return nil, &Error{Op: "New", Err: err}
	}

	controller, err := com.CreateObject(p.serviceControlID())
	if err != nil {
		talker.Close()
		rt.Close()
		return nil, &Error{Op: "New", Err: err}
	}

	return &CeVIO{rt: rt, talker: talker, controller: controller}, nil
}

// NewAI binds CeVIO AI. It is New(CevioAI).
func NewAI() (*CeVIO, error) {
	return New(CevioAI)
}

// Close releases both automation objects and then uninitializes the COM
// runtime. The CeVIO value must not be used afterward.
func (c *CeVIO) Close() error {
	c.talker.Close()
	c.controller.Close()
	if c.rt != nil {
		c.rt.Close()
	}
	return nil
}

func (c *CeVIO) getInt(obj invoker, op, member string) (int32, error) {
	v, err := obj.GetProperty(member, nil)
	if err != nil {
		return 0, &Error{Op: op, Member: member, Err: err}
	}
	defer v.Clear()

	n, err := v.ToInt32()
	if err != nil {
		return 0, &Error{Op: op, Member: member, Err: err}
	}
	return n, nil
}

func (c *CeVIO) getString(obj invoker, op, member string) (string, error) {
	v, err := obj.GetProperty(member, nil)
	if err != nil {
		return "", &Error{Op: op, Member: member, Err: err}
	}
	defer v.Clear()

	s, err := v.ToString()
	if err != nil {
		return "", &Error{Op: op, Member: member, Err: err}
	}
	return s, nil
}

func (c *CeVIO) getBool(obj invoker, op, member string) (bool, error) {
	v, err := obj.GetProperty(member, nil)
	if err != nil {
		return false, &Error{Op: op, Member: member, Err: err}
	}
	defer v.Clear()

	b, err := v.ToBool()
	if err != nil {
		return false, &Error{Op: op, Member: member, Err: err}
	}
	return b, nil
}

func (c *CeVIO) putValue(obj invoker, op, member string, value automation.Variant) error {
	defer value.Clear()
	if err := obj.PutProperty(member, nil, value); err != nil {
		return &Error{Op: op, Member: member, Err: err}
	}
	return nil
}

// callDiscard invokes a method whose result the facade does not surface.
// The result still gets cleared; the host may hand back an interface whose
// reference would otherwise leak.
func (c *CeVIO) callDiscard(obj invoker, op, member string, args ...automation.Variant) error {
	defer clearAll(args)
	res, err := obj.CallMethod(member, args...)
	if err != nil {
		return &Error{Op: op, Member: member, Err: err}
	}
	res.Clear()
	return nil
}

func clearAll(args []automation.Variant) {
	for i := range args {
		args[i].Clear()
	}
}
