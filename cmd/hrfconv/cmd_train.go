package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hrf/dsp/conv"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Print the stimulus trains and their sum",
		Long: `Print one stimulus train per condition and their element-wise sum.

Each --events value is one condition; onsets within a condition form a set,
while coinciding onsets of different conditions add up in the sum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := loadRun(cmd)
			if err != nil {
				return err
			}
			if err := run.requireConditions(); err != nil {
				return err
			}

			trains, err := run.cfg.BuildTrains()
			if err != nil {
				return err
			}
			sum, err := conv.Sum(trains...)
			if err != nil {
				return err
			}

			cols := make([]series, 0, len(trains)+1)
			for i, name := range run.labels() {
				cols = append(cols, series{Name: name, Values: trains[i]})
			}
			cols = append(cols, series{Name: "sum", Values: sum})

			if run.jsonOut {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"length":     run.cfg.Length,
					"conditions": cols[:len(trains)],
					"sum":        sum,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d conditions, %d samples\n\n", len(trains), run.cfg.Length)
			return writeTable(cmd.OutOrStdout(), cols)
		},
	}

	addTrainFlags(cmd)
	return cmd
}
