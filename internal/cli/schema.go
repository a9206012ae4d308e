package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipeline/postgres"
)

var errNoDatabase = errors.New("pipeline: DATABASE_URL is not set")

func (c *CLI) schemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the report tables",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Create the report tables if they don't exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(ctx context.Context, s *postgres.PGStore) error {
				if err := s.CreateSchema(ctx); err != nil {
					return err
				}
				loggerFromContext(ctx).Info("schema created")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "drop",
		Short: "Drop the report tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(ctx context.Context, s *postgres.PGStore) error {
				if err := s.DropSchema(ctx); err != nil {
					return err
				}
				loggerFromContext(ctx).Info("schema dropped")
				return nil
			})
		},
	})

	return cmd
}

func (c *CLI) withStore(ctx context.Context, fn func(context.Context, *postgres.PGStore) error) error {
	if !c.cfg.StoreEnabled() {
		return errNoDatabase
	}
	pool, err := pgxpool.New(ctx, c.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pipeline: connect: %w", err)
	}
	defer pool.Close()
	return fn(ctx, postgres.New(pool))
}
