package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-hrf/internal/config"
	"github.com/cwbudde/algo-hrf/internal/logging"
)

// runContext carries the resolved settings of one command invocation.
type runContext struct {
	cfg     *config.Config
	kernel  []float64
	logger  *slog.Logger
	jsonOut bool
}

// addKernelFlags registers the flags selecting and sampling the HRF.
func addKernelFlags(cmd *cobra.Command) {
	cmd.Flags().String("kernel", "", "HRF name: tutorial or canonical")
	cmd.Flags().Float64("step", 0, "Canonical HRF sample spacing in seconds")
	cmd.Flags().Float64("duration", 0, "Canonical HRF window in seconds")
	cmd.Flags().Float64("peak", 0, "Rescale the HRF to this peak amplitude (0 keeps it)")
}

// addTrainFlags registers the flags describing stimulus trains.
func addTrainFlags(cmd *cobra.Command) {
	cmd.Flags().Int("length", 0, "Samples per stimulus train")
	cmd.Flags().StringArray("events", nil, "Comma-separated onsets of one condition (repeatable)")
	cmd.Flags().Int("block", 0, "Block length in samples for --events conditions (0 for events)")
}

// loadRun resolves config file, environment and flags, in that order, and
// builds the kernel once for the command.
func loadRun(cmd *cobra.Command) (*runContext, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, nil)
	if err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kernel, err := cfg.BuildKernel()
	if err != nil {
		return nil, err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	logger.Debug("run configured",
		"config", path,
		"kernel", cfg.Kernel,
		"length", cfg.Length,
		"mode", cfg.Mode,
		"kernel_samples", len(kernel),
		"conditions", len(cfg.Conditions))

	return &runContext{cfg: cfg, kernel: kernel, logger: logger, jsonOut: jsonOut}, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("kernel") {
		cfg.Kernel, _ = flags.GetString("kernel")
	}
	if flags.Changed("step") {
		cfg.Step, _ = flags.GetFloat64("step")
	}
	if flags.Changed("duration") {
		cfg.Duration, _ = flags.GetFloat64("duration")
	}
	if flags.Changed("peak") {
		cfg.Peak, _ = flags.GetFloat64("peak")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("length") {
		cfg.Length, _ = flags.GetInt("length")
	}

	if flags.Changed("events") {
		events, _ := flags.GetStringArray("events")
		block, _ := flags.GetInt("block")

		conditions := make([]config.Condition, 0, len(events))
		for i, list := range events {
			onsets, err := parseOnsets(list)
			if err != nil {
				return fmt.Errorf("--events %d: %w", i+1, err)
			}
			conditions = append(conditions, config.Condition{Onsets: onsets, Duration: block})
		}
		cfg.Conditions = conditions
	}

	return nil
}

// parseOnsets parses a comma-separated list of sample indices.
// An empty list is a condition without onsets.
func parseOnsets(list string) ([]int, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return []int{}, nil
	}

	parts := strings.Split(list, ",")
	onsets := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("onset %q is not an integer: %w", p, core.ErrInvalidInput)
		}
		onsets = append(onsets, v)
	}
	return onsets, nil
}

// requireConditions rejects runs without any stimulus train.
func (r *runContext) requireConditions() error {
	if len(r.cfg.Conditions) == 0 {
		return fmt.Errorf("no conditions: pass --events or set conditions in the config file: %w", core.ErrInvalidInput)
	}
	return nil
}

// labels returns the display name of every condition.
func (r *runContext) labels() []string {
	out := make([]string, len(r.cfg.Conditions))
	for i, cond := range r.cfg.Conditions {
		out[i] = cond.Label(i)
	}
	return out
}
