// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"github.com/spf13/cobra"

	"github.com/rindou-h/cevigoes/cevio"
)

// addVoiceFlags registers the voice parameter flags shared by the speak
// and save commands.
func addVoiceFlags(cmd *cobra.Command) {
	cmd.Flags().String("cast", "", "cast (voice) to speak with")
	cmd.Flags().Int32("volume", 0, "volume, 0 to 100")
	cmd.Flags().Int32("speed", 0, "speed, 0 to 100")
	cmd.Flags().Int32("tone", 0, "pitch, 0 to 100")
	cmd.Flags().Int32("tone-scale", 0, "intonation, 0 to 100")
	cmd.Flags().Int32("alpha", 0, "voice quality, 0 to 100")
	cmd.Flags().Bool("no-start", false, "fail instead of starting the host when it is not running")
}

// applyVoiceFlags pushes only the flags the user actually set, leaving the
// host's current settings alone otherwise. Values are handed to the host
// as-is; it applies its own range handling.
func applyVoiceFlags(cmd *cobra.Command, c *cevio.CeVIO) error {
	flags := cmd.Flags()
	if flags.Changed("cast") {
		cast, _ := flags.GetString("cast")
		if err := c.SetCast(cast); err != nil {
			return err
		}
	}
	params := []struct {
		name string
		set  func(int32) error
	}{
		{"volume", c.SetVolume},
		{"speed", c.SetSpeed},
		{"tone", c.SetTone},
		{"tone-scale", c.SetToneScale},
		{"alpha", c.SetAlpha},
	}
	for _, p := range params {
		if !flags.Changed(p.name) {
			continue
		}
		v, _ := flags.GetInt32(p.name)
		if err := p.set(v); err != nil {
			return err
		}
	}
	return nil
}
