// Command hrfconv predicts fMRI responses by convolving stimulus trains with
// a haemodynamic response function.
//
// Usage:
//
//	hrfconv [command] [flags]
//
// Examples:
//
//	hrfconv kernel
//	hrfconv kernel --kernel canonical --step 0.5
//	hrfconv train --length 61 --events 10 --events 16
//	hrfconv convolve --length 61 --events 10
//	hrfconv convolve --config run.yaml --mode causal --json
//	hrfconv linearity --events 10 --events 16
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hrfconv",
		Short: "Convolve stimulus trains with a haemodynamic response function",
		Long: `hrfconv models the BOLD signal measured by fMRI as stimulus trains
convolved with a haemodynamic response function (HRF).

Settings come from an optional YAML run file (--config), HRF_* environment
variables, and command-line flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "YAML run file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newKernelCmd(),
		newTrainCmd(),
		newConvolveCmd(),
		newLinearityCmd(),
	)

	return rootCmd
}
