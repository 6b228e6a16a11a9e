// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package cevigoes

// Error wraps an HRESULT returned by a COM or Win32 API and implements the
// Go error interface. The zero value is hrS_OK, which is not a failure;
// callers should consult Failed before propagating an Error.
type Error HRESULT

// ErrorFromHRESULT converts hr into an Error.
func ErrorFromHRESULT(hr HRESULT) Error {
	return Error(hr)
}

// Succeeded returns true when the Error's code is a success code.
func (e Error) Succeeded() bool {
	return HRESULT(e).Succeeded()
}

// Failed returns true when the Error's code is a failure code.
func (e Error) Failed() bool {
	return HRESULT(e).Failed()
}

// AsHRESULT returns the Error's underlying HRESULT.
func (e Error) AsHRESULT() HRESULT {
	return HRESULT(e)
}

func (e Error) Error() string {
	return hresultMessage(HRESULT(e))
}
