package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vidcut/internal/deps"
	"vidcut/internal/ffmpeg"
)

func newDoctorCommand(ctx *commandContext, ffmpegFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Show which ffmpeg vidcut will use and verify it runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			hint := ""
			if ffmpegFlag != nil {
				hint = *ffmpegFlag
			}
			if hint == "" {
				hint = cfg.FFmpeg.Binary
			}

			out := cmd.OutOrStdout()
			binary, err := ffmpeg.ResolveBinary(hint)
			if err != nil {
				return err
			}
			client, err := ffmpeg.New(binary)
			if err != nil {
				return err
			}
			version, err := client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("cannot run ffmpeg: %w", err)
			}

			fmt.Fprintf(out, "ffmpeg: %s\n", binary)
			fmt.Fprintln(out, version)

			statuses := deps.CheckBinaries([]deps.Requirement{
				{Name: "FFmpeg", Command: "ffmpeg", Description: "trimming and duration probing"},
			})
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				detail := status.Resolved
				if !status.Available {
					detail = status.Detail
				}
				availability := "yes"
				if !status.Available {
					availability = "no"
				}
				rows = append(rows, []string{status.Name, availability, detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Dependency", "On PATH", "Detail"}, rows))
			return nil
		},
	}
}
