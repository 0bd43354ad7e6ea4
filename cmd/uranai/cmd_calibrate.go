package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/HendryAvila/uranai/internal/calibration"
	"github.com/spf13/cobra"
)

func newCalibrateCmd(a *app) *cobra.Command {
	var (
		markdown  bool
		asJSON    bool
		casesPath string
	)

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Check candidate formulas against ground-truth dates",
		Long: `Calibrate evaluates every candidate animal and six-star formula against the
ground-truth cases and lists which cases each candidate reproduces. It does
not choose a formula.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases := calibration.DefaultCases()
			if casesPath != "" {
				f, err := os.Open(casesPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if cases, err = calibration.LoadCases(f); err != nil {
					return err
				}
			}

			report := calibration.Search(calibration.Catalog(), cases)
			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			case markdown:
				_, err := fmt.Fprintln(out, report.Render(calibration.Markdown))
				return err
			default:
				_, err := fmt.Fprintln(out, report.Render(calibration.ASCII))
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the report as a Markdown table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	cmd.Flags().StringVar(&casesPath, "cases", "", "Ground-truth YAML file (default: built-in cases)")
	cmd.MarkFlagsMutuallyExclusive("markdown", "json")
	return cmd
}
