// Package cli implements the pipeline command-line interface.
//
// Commands:
//   - serve: run the HTTP validation service
//   - check: validate a pipeline document from a file or stdin
//   - schema: create or drop the report tables
//
// All commands accept --config for a TOML settings file and --verbose
// (-v) for debug logging. Loggers travel through context.Context.
package cli

import (
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipeline/config"
)

// CLI holds state shared by all commands.
type CLI struct {
	stderr     io.Writer
	cfg        config.Config
	configPath string
	verbose    bool
	version    string
}

// New creates a CLI that logs to stderr.
func New(stderr io.Writer, version string) *CLI {
	return &CLI{stderr: stderr, cfg: config.Default(), version: version}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pipeline",
		Short:         "Validate pipeline graphs",
		Long:          `pipeline reports node and edge counts for pipeline graphs and checks that they are acyclic.`,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg

			// Load already validated the level.
			level, _ := cfg.Level()
			if c.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(c.stderr, level)))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.schemaCommand())

	return root
}
