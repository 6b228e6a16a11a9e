// Copyright (c) The cevigoes AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rindou-h/cevigoes/cevio"
)

var (
	productName string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "cevioctl",
	Short: "Control a CeVIO speech synthesis host",
	Long: `cevioctl drives a locally installed CeVIO or CeVIO AI host over COM.

It can start and stop the host, list available casts, speak text aloud
through the host, and render text to WAV files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command. It is called once, from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&productName, "product", "cevio-ai", "host product to target (cevio-ai or cevio-cs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
}

func parseProduct(name string) (cevio.Product, error) {
	switch name {
	case "cevio-ai":
		return cevio.CevioAI, nil
	case "cevio-cs":
		return cevio.CevioCS, nil
	default:
		return 0, fmt.Errorf("unknown product %q (want cevio-ai or cevio-cs)", name)
	}
}

// openCevio connects to the product selected by --product. When startHost
// is set and the host is not already serving, it is launched and the call
// blocks until the host is ready to accept requests.
func openCevio(startHost bool) (*cevio.CeVIO, error) {
	p, err := parseProduct(productName)
	if err != nil {
		return nil, err
	}
	c, err := cevio.New(p)
	if err != nil {
		return nil, err
	}
	if startHost {
		log.Debug("starting host", "product", p)
		code, err := c.StartHost(false)
		if err != nil {
			c.Close()
			return nil, err
		}
		if code != 0 {
			c.Close()
			return nil, startHostError(code)
		}
	}
	return c, nil
}

// startHostError renders the StartHost result codes the hosts document.
func startHostError(code int32) error {
	switch code {
	case -1:
		return fmt.Errorf("host start failed: product not installed")
	case -2:
		return fmt.Errorf("host start failed: host executable missing or broken")
	case -3:
		return fmt.Errorf("host start failed: host process exited during startup")
	case -4:
		return fmt.Errorf("host start failed: host reported an application error")
	default:
		return fmt.Errorf("host start failed (code %d)", code)
	}
}
