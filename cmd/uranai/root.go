// uranai resolves deterministic fortune attributes from a birth date and
// serves them over MCP.
//
// Usage:
//
//	uranai serve                      # MCP server on stdio
//	uranai resolve 2008-01-05 [--json]
//	uranai calibrate [--markdown]
//	uranai import animals.csv         # load the CSV into the SQLite store
package main

import (
	"fmt"
	"os"

	"github.com/HendryAvila/uranai/internal/config"
	"github.com/HendryAvila/uranai/internal/logging"
	sv "github.com/HendryAvila/uranai/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the persistent pre-run resolved to the subcommands.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "uranai",
		Short: "Deterministic fortune resolver",
		Long: "uranai derives age, Western zodiac, animal-fortune character and six-star\n" +
			"category from a birth date, and can serve them to AI tools over MCP.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "Path to config YAML")
	root.Version = sv.Version

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newCalibrateCmd(a))
	root.AddCommand(newImportCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
