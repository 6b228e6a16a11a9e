// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package cevio

import (
	"github.com/rindou-h/cevigoes/com/automation"
)

// The voice parameters below all range 0 to 100 as far as the host is
// concerned. Nothing is validated here; an out-of-range value is the host's
// to accept or reject.

// Volume returns the loudness.
func (c *CeVIO) Volume() (int32, error) {
	return c.getInt(c.talker, "Volume", "Volume")
}

// SetVolume sets the loudness.
func (c *CeVIO) SetVolume(volume int32) error {
	return c.putValue(c.talker, "SetVolume", "Volume", automation.NewInt32(volume))
}

// Speed returns the speaking rate.
func (c *CeVIO) Speed() (int32, error) {
	return c.getInt(c.talker, "Speed", "Speed")
}

// SetSpeed sets the speaking rate.
func (c *CeVIO) SetSpeed(speed int32) error {
	return c.putValue(c.talker, "SetSpeed", "Speed", automation.NewInt32(speed))
}

// Tone returns the pitch.
func (c *CeVIO) Tone() (int32, error) {
	return c.getInt(c.talker, "Tone", "Tone")
}

// SetTone sets the pitch.
func (c *CeVIO) SetTone(tone int32) error {
	return c.putValue(c.talker, "SetTone", "Tone", automation.NewInt32(tone))
}

// ToneScale returns the intonation.
func (c *CeVIO) ToneScale() (int32, error) {
	return c.getInt(c.talker, "ToneScale", "ToneScale")
}

// SetToneScale sets the intonation.
func (c *CeVIO) SetToneScale(toneScale int32) error {
	return c.putValue(c.talker, "SetToneScale", "ToneScale", automation.NewInt32(toneScale))
}

// Alpha returns the voice quality.
func (c *CeVIO) Alpha() (int32, error) {
	return c.getInt(c.talker, "Alpha", "Alpha")
}

// SetAlpha sets the voice quality.
func (c *CeVIO) SetAlpha(alpha int32) error {
	return c.putValue(c.talker, "SetAlpha", "Alpha", automation.NewInt32(alpha))
}

// Cast returns the current cast (voice) name.
func (c *CeVIO) Cast() (string, error) {
	return c.getString(c.talker, "Cast", "Cast")
}

// SetCast selects the cast. A cast must be selected before the talker will
// speak or render.
func (c *CeVIO) SetCast(cast string) error {
	return c.putValue(c.talker, "SetCast", "Cast", automation.NewString(cast))
}

// AvailableCasts returns the installed cast names, as the host renders them.
// Which casts exist depends on the voice libraries installed.
func (c *CeVIO) AvailableCasts() (string, error) {
	return c.getString(c.talker, "AvailableCasts", "AvailableCasts")
}

// Speak starts playing back text on the host and returns without waiting
// for playback to finish.
func (c *CeVIO) Speak(text string) error {
	return c.callDiscard(c.talker, "Speak", "Speak", automation.NewString(text))
}

// GetPhonemes asks the host to compute phoneme timing for text, usable for
// lip sync. The host-side data object is released immediately; only success
// or failure is surfaced.
func (c *CeVIO) GetPhonemes(text string) error {
	return c.callDiscard(c.talker, "GetPhonemes", "GetPhonemes", automation.NewString(text))
}

// OutputWaveToFile renders text to path as a 48 kHz, 16-bit, mono WAV
// file. The host does the writing; the path is interpreted by it.
func (c *CeVIO) OutputWaveToFile(text, path string) error {
	return c.callDiscard(c.talker, "OutputWaveToFile", "OutputWaveToFile",
		automation.NewString(text), automation.NewString(path))
}
