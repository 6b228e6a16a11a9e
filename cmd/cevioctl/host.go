// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Start or stop the host process",
}

var hostStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Launch the host and wait until it is ready",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noWait, _ := cmd.Flags().GetBool("no-wait")

		c, err := openCevio(false)
		if err != nil {
			return err
		}
		defer c.Close()

		code, err := c.StartHost(noWait)
		if err != nil {
			return err
		}
		if code != 0 {
			return startHostError(code)
		}
		log.Info("host started")
		return nil
	},
}

var hostCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Ask the host process to exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetInt32("mode")

		c, err := openCevio(false)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.CloseHost(mode); err != nil {
			return err
		}
		log.Info("host close requested")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hostCmd)
	hostCmd.AddCommand(hostStartCmd, hostCloseCmd)
	hostStartCmd.Flags().Bool("no-wait", false, "return as soon as the host process is launched")
	hostCloseCmd.Flags().Int32("mode", 0, "close mode passed through to the host")
}
