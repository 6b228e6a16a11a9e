// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var castsCmd = &cobra.Command{
	Use:   "casts",
	Short: "List the casts the host offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		noStart, _ := cmd.Flags().GetBool("no-start")
		c, err := openCevio(!noStart)
		if err != nil {
			return err
		}
		defer c.Close()

		casts, err := c.AvailableCasts()
		if err != nil {
			return err
		}
		fmt.Println(casts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(castsCmd)
	castsCmd.Flags().Bool("no-start", false, "fail instead of starting the host when it is not running")
}
