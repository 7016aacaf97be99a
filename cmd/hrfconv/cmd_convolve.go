package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"github.com/cwbudde/algo-hrf/dsp/hrf"
	"github.com/cwbudde/algo-hrf/internal/logging"
)

func newConvolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convolve",
		Short: "Predict the response to each condition and to all combined",
		Long: `Convolve every condition's stimulus train with the HRF and print the
per-condition responses together with the combined response of the summed
trains.

The full output has length + kernel samples - 1 values. --mode causal keeps
the first --length samples, matching the scan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd)
			if err != nil {
				return err
			}
			if err := run.requireConditions(); err != nil {
				return err
			}

			mode, err := run.cfg.OutputMode()
			if err != nil {
				return err
			}
			kernel := run.kernel
			trains, err := run.cfg.BuildTrains()
			if err != nil {
				return err
			}

			start := time.Now()
			responses, err := hrf.PredictEach(kernel, trains...)
			if err != nil {
				return err
			}
			combined, err := hrf.PredictSum(kernel, trains...)
			if err != nil {
				return err
			}
			run.logger.Debug("convolved",
				"kernel_samples", len(kernel),
				"trains", len(trains),
				"elapsed", time.Since(start))

			cols := make([]series, 0, len(responses)+1)
			for i, name := range run.labels() {
				values, err := conv.Trim(responses[i], run.cfg.Length, len(kernel), mode)
				if err != nil {
					return err
				}
				cols = append(cols, series{Name: name, Values: values})
			}
			combined, err = conv.Trim(combined, run.cfg.Length, len(kernel), mode)
			if err != nil {
				return err
			}
			cols = append(cols, series{Name: "combined", Values: combined})
			run.logger.Log(context.Background(), logging.LevelTrace, "combined response", "values", combined)

			if run.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"kernel":    run.cfg.Kernel,
					"mode":      mode.String(),
					"length":    run.cfg.Length,
					"responses": cols[:len(responses)],
					"combined":  combined,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "kernel %s, %d samples, mode %s\n\n", run.cfg.Kernel, len(combined), mode)
			return writeTable(cmd.OutOrStdout(), cols)
		},
	}

	addKernelFlags(cmd)
	addTrainFlags(cmd)
	cmd.Flags().String("mode", "", "Output mode: full, same, valid or causal")
	return cmd
}
