package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"vidcut/internal/cutter"
)

// outcomeView is the JSON shape emitted for --json consumers.
type outcomeView struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Status string `json:"status"`
	Via    string `json:"via,omitempty"`
	Code   int    `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func renderOutcomes(cmd *cobra.Command, outcomes []cutter.Outcome, asJSON bool) error {
	if asJSON {
		views := make([]outcomeView, 0, len(outcomes))
		for _, o := range outcomes {
			views = append(views, outcomeView{
				Input:  o.Input,
				Output: o.Output,
				Status: string(o.Status),
				Via:    string(o.Via),
				Code:   o.Code,
				Reason: o.Reason(),
			})
		}
		return writeJSON(cmd, views)
	}

	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		switch o.Status {
		case cutter.StatusSucceeded:
			fmt.Fprintf(out, "OK (%s): %s -> %s\n", o.Via, filepath.Base(o.Input), filepath.Base(o.Output))
		case cutter.StatusPlanned:
			// Dry-run already printed the command line.
		case cutter.StatusSkipped:
			fmt.Fprintf(out, "skip: %s\n", o.Reason())
		case cutter.StatusFailed:
			fmt.Fprintf(out, "FAIL: %s: %s\n", filepath.Base(o.Input), o.Reason())
		}
	}

	if len(outcomes) > 1 && stdoutIsTerminal(out) {
		fmt.Fprintln(out, renderSummaryTable(outcomes))
	}
	return nil
}

func renderSummaryTable(outcomes []cutter.Outcome) string {
	headers := []string{"Status", "Via", "Input", "Output", "Detail"}
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []string{
			string(o.Status),
			string(o.Via),
			filepath.Base(o.Input),
			filepath.Base(o.Output),
			o.Reason(),
		})
	}
	return renderTable(headers, rows)
}

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func stdoutIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
