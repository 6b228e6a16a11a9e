// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Speak text aloud through the host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noStart, _ := cmd.Flags().GetBool("no-start")
		c, err := openCevio(!noStart)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := applyVoiceFlags(cmd, c); err != nil {
			return err
		}
		log.Debug("speaking", "chars", len([]rune(args[0])))
		return c.Speak(args[0])
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)
	addVoiceFlags(speakCmd)
}
