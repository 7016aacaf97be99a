package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hrf/internal/logging"
)

func newKernelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Print the haemodynamic response function",
		Long: `Print the samples of the configured HRF.

The tutorial kernel has 20 fixed samples. The canonical kernel is the
SPM double-gamma HRF, sampled every --step seconds over --duration seconds
and scaled to unit sum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd)
			if err != nil {
				return err
			}

			kernel := run.kernel
			run.logger.Debug("kernel built", "kernel", run.cfg.Kernel, "samples", len(kernel))
			run.logger.Log(context.Background(), logging.LevelTrace, "kernel values", "values", kernel)

			if run.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"kernel":  run.cfg.Kernel,
					"samples": len(kernel),
					"values":  kernel,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "kernel %s, %d samples\n\n", run.cfg.Kernel, len(kernel))
			return writeTable(cmd.OutOrStdout(), []series{{Name: "value", Values: kernel}})
		},
	}

	addKernelFlags(cmd)
	return cmd
}
