// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show host state, versions, and current voice settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCevio(false)
		if err != nil {
			return err
		}
		defer c.Close()

		started, err := c.IsHostStarted()
		if err != nil || !started {
			if err != nil {
				log.Debug("host query failed", "error", err)
			}
			fmt.Println("host: not running")
			return nil
		}
		fmt.Println("host: running")

		if hv, err := c.HostVersion(); err == nil {
			fmt.Printf("host version: %s\n", hv)
		}
		if iv, err := c.InterfaceVersion(); err == nil {
			fmt.Printf("interface version: %s\n", iv)
		}
		if cast, err := c.Cast(); err == nil && cast != "" {
			fmt.Printf("cast: %s\n", cast)
		}
		for _, p := range []struct {
			name string
			get  func() (int32, error)
		}{
			{"volume", c.Volume},
			{"speed", c.Speed},
			{"tone", c.Tone},
			{"tone scale", c.ToneScale},
			{"alpha", c.Alpha},
		} {
			if v, err := p.get(); err == nil {
				fmt.Printf("%s: %d\n", p.name, v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
