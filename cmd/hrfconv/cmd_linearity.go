package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-hrf/dsp/hrf"
)

func newLinearityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linearity",
		Short: "Compare sum-then-convolve against convolve-then-sum",
		Long: `Convolve the summed stimulus trains once, convolve each train separately
and sum the responses, and report the largest absolute difference between the
two. For a linear system the difference is zero up to rounding.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd)
			if err != nil {
				return err
			}
			if err := run.requireConditions(); err != nil {
				return err
			}

			kernel := run.kernel
			trains, err := run.cfg.BuildTrains()
			if err != nil {
				return err
			}

			diff, err := hrf.CheckLinearity(kernel, trains...)
			if err != nil {
				return err
			}
			tolerance, _ := cmd.Flags().GetFloat64("tolerance")
			linear := core.NearlyEqual(diff, 0, tolerance)
			run.logger.Debug("linearity checked", "max_abs_diff", diff, "tolerance", tolerance)

			if run.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"conditions":   len(trains),
					"max_abs_diff": diff,
					"tolerance":    tolerance,
					"linear":       linear,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "conditions:   %d\n", len(trains))
			fmt.Fprintf(cmd.OutOrStdout(), "max abs diff: %g\n", diff)
			fmt.Fprintf(cmd.OutOrStdout(), "linear:       %t (tolerance %g)\n", linear, tolerance)
			return nil
		},
	}

	addKernelFlags(cmd)
	addTrainFlags(cmd)
	cmd.Flags().Float64("tolerance", 1e-9, "Largest difference still reported as linear")
	return cmd
}
