package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipeline"
)

// ErrCyclic is returned by check --strict when the pipeline is not a DAG.
var ErrCyclic = errors.New("pipeline: graph contains a cycle")

func (c *CLI) checkCommand() *cobra.Command {
	var (
		asJSON bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a pipeline document",
		Long: `Read a pipeline JSON document ({"nodes": [...], "edges": [...]}) from a file,
or from stdin when the file is "-" or omitted, and report its node count,
edge count and whether it is acyclic. Malformed documents report zero counts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "stdin"
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("pipeline: open: %w", err)
				}
				defer f.Close()
				name, r = args[0], f
			}

			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("pipeline: read %s: %w", name, err)
			}

			res := pipeline.Parse(data)
			loggerFromContext(cmd.Context()).Debug("checked pipeline",
				"input", name, "bytes", len(data), "nodes", res.NumNodes, "edges", res.NumEdges)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				printResult(out, name, res)
			}

			if strict && !res.IsDAG {
				return ErrCyclic
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the pipeline has a cycle")

	return cmd
}
