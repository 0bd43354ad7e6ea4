package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HendryAvila/uranai/internal/calendar"
	sv "github.com/HendryAvila/uranai/internal/server"
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		today  string
	)

	cmd := &cobra.Command{
		Use:   "resolve <birth-date>",
		Short: "Print the fortune record for a birth date",
		Long: "Resolve prints age, zodiac sign, animal character and six-star category.\n" +
			"The date may use -, / or . as separators.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := sv.NewRuntime(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			birth, err := calendar.Parse(args[0])
			if err != nil {
				return err
			}
			asOf := calendar.Today()
			if today != "" {
				if asOf, err = calendar.Parse(today); err != nil {
					return fmt.Errorf("--today: %w", err)
				}
			}

			rec := rt.Fortune.Resolve(ctx, birth, asOf)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}
			_, err = fmt.Fprintln(out, strings.Join(rec.Lines(), "\n"))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	cmd.Flags().StringVar(&today, "today", "", "Compute age as of this date instead of the local date")
	return cmd
}
