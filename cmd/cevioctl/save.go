// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save <text>",
	Short: "Render text to a WAV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		play, _ := cmd.Flags().GetBool("play")
		noStart, _ := cmd.Flags().GetBool("no-start")

		c, err := openCevio(!noStart)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := applyVoiceFlags(cmd, c); err != nil {
			return err
		}

		// The host resolves relative paths against its own working
		// directory, not ours.
		abs, err := filepath.Abs(output)
		if err != nil {
			return err
		}
		if err := c.OutputWaveToFile(args[0], abs); err != nil {
			return err
		}
		log.Info("wrote wave file", "path", abs)

		if play {
			return playWave(abs)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	addVoiceFlags(saveCmd)
	saveCmd.Flags().StringP("output", "o", "voice.wav", "output WAV path")
	saveCmd.Flags().Bool("play", false, "play the rendered file when done")
}

// playWave plays a WAV file on the default audio device and blocks until
// playback finishes.
func playWave(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(done) })))
	<-done
	return nil
}
