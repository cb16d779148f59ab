package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"vidcut/internal/cutrange"
	"vidcut/internal/cutter"
	"vidcut/internal/ffmpeg"
	"vidcut/internal/timecode"
)

type cutFlags struct {
	from      string
	to        string
	duration  string
	trimStart string
	trimEnd   string
	accurate  bool
	fast      bool
	overwrite bool
	dryRun    bool
	out       string
	suffix    string
	ffmpeg    string
	jsonOut   bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var flags cutFlags

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "vidcut <input>...",
		Short: "Fast and accurate video trimming powered by FFmpeg",
		Long: "vidcut trims video files with FFmpeg. The default mode stream-copies\n" +
			"for speed; when that fails it automatically falls back to a\n" +
			"frame-accurate cut that re-encodes video and copies audio.",
		Example: `  # Fast, no re-encode: cut from 00:00:05 to 00:00:12
  vidcut input.mp4 --from 00:00:05 --to 00:00:12 --overwrite

  # Keep 10 seconds starting at 45.5s, write to out.mp4
  vidcut input.mp4 --from 45.5 --duration 10s -o out.mp4 --overwrite

  # Trim the last 3 seconds (probes the source duration)
  vidcut input.mp4 --trim-end 3s --overwrite

  # Frame-accurate cut, batch over a glob
  vidcut "*.mp4" --from 2:00 --duration 15s --accurate --suffix _clip`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCut(cmd, ctx, flags, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flags.from, "from", "", "Start time (e.g. 5, 00:00:05.200, 90s)")
	rootCmd.Flags().StringVar(&flags.to, "to", "", "End time (absolute), e.g. 00:00:10.000")
	rootCmd.Flags().StringVarP(&flags.duration, "duration", "t", "", "Duration to keep, e.g. 5s or 00:00:05")
	rootCmd.Flags().StringVar(&flags.trimStart, "trim-start", "", "Trim N seconds from the start, e.g. 4s")
	rootCmd.Flags().StringVar(&flags.trimEnd, "trim-end", "", "Trim N seconds from the end (keeps the rest)")
	rootCmd.Flags().BoolVar(&flags.accurate, "accurate", false, "Frame-accurate cut (re-encode video, copy audio)")
	rootCmd.Flags().BoolVar(&flags.fast, "fast", false, "Force fast stream copy mode (default)")
	rootCmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Overwrite outputs if they exist")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Print the ffmpeg command(s) without executing")
	rootCmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (single input only)")
	rootCmd.Flags().StringVar(&flags.suffix, "suffix", "", "Suffix for derived outputs (default from config, _cut)")
	rootCmd.Flags().StringVar(&flags.ffmpeg, "ffmpeg", "", "Override ffmpeg binary path or name")
	rootCmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Emit outcomes as JSON")

	rootCmd.AddCommand(newDoctorCommand(ctx, &flags.ffmpeg))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runCut(cmd *cobra.Command, ctx *commandContext, flags cutFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	times, err := parseTimeFlags(flags)
	if err != nil {
		return err
	}

	inputs, err := cutter.ExpandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New("no input files matched")
	}
	if flags.out != "" && len(inputs) != 1 {
		return fmt.Errorf("--out is only allowed with a single input, got %d", len(inputs))
	}

	binaryHint := flags.ffmpeg
	if binaryHint == "" {
		binaryHint = cfg.FFmpeg.Binary
	}
	binary, err := ffmpeg.ResolveBinary(binaryHint)
	if err != nil {
		return err
	}
	client, err := ffmpeg.New(binary)
	if err != nil {
		return err
	}
	cut, err := cutter.New(client,
		cutter.WithLogger(logger),
		cutter.WithPlanWriter(cmd.OutOrStdout()),
	)
	if err != nil {
		return err
	}

	suffix := flags.suffix
	if suffix == "" {
		suffix = cfg.Output.Suffix
	}
	overwrite := flags.overwrite || cfg.Output.Overwrite
	// --fast wins when both mode flags are set, matching the default mode.
	forceAccurate := flags.accurate && !flags.fast

	outcomes := make([]cutter.Outcome, 0, len(inputs))
	for _, input := range inputs {
		output := flags.out
		if output == "" {
			output = cutter.DeriveOutput(input, suffix)
		}
		outcome := cut.Cut(cmd.Context(), cutter.Request{
			Input:     input,
			Output:    output,
			Times:     times,
			Overwrite: overwrite,
			Accurate:  forceAccurate,
			DryRun:    flags.dryRun,
		})
		outcomes = append(outcomes, outcome)
	}

	if err := renderOutcomes(cmd, outcomes, flags.jsonOut); err != nil {
		return err
	}

	failed := 0
	for _, outcome := range outcomes {
		if !outcome.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) failed", failed, len(outcomes))
	}
	return nil
}

func parseTimeFlags(flags cutFlags) (cutrange.Raw, error) {
	var raw cutrange.Raw
	var err error
	if raw.Start, err = parseOptionalTime("--from", flags.from); err != nil {
		return cutrange.Raw{}, err
	}
	if raw.End, err = parseOptionalTime("--to", flags.to); err != nil {
		return cutrange.Raw{}, err
	}
	if raw.Duration, err = parseOptionalTime("--duration", flags.duration); err != nil {
		return cutrange.Raw{}, err
	}
	if raw.TrimStart, err = parseOptionalTime("--trim-start", flags.trimStart); err != nil {
		return cutrange.Raw{}, err
	}
	if raw.TrimEnd, err = parseOptionalTime("--trim-end", flags.trimEnd); err != nil {
		return cutrange.Raw{}, err
	}
	return raw, nil
}

func parseOptionalTime(flag, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	seconds, err := timecode.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", flag, err)
	}
	return &seconds, nil
}
