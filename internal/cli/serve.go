package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/pipeline"
	"github.com/meikuraledutech/pipeline/postgres"
	"github.com/meikuraledutech/pipeline/server"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		migrate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP validation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := c.cfg
			if listen != "" {
				cfg.Listen = listen
			}

			var store pipeline.ReportStore
			if cfg.StoreEnabled() {
				pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("pipeline: connect: %w", err)
				}
				defer pool.Close()

				pg := postgres.New(pool)
				if migrate {
					if err := pg.CreateSchema(ctx); err != nil {
						return fmt.Errorf("pipeline: schema: %w", err)
					}
					logger.Info("schema created")
				}
				store = pg
			} else {
				logger.Debug("report storage disabled")
			}

			srv := server.New(cfg, store, logger)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Listen(cfg.Listen) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (overrides config)")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "create the report schema before serving")

	return cmd
}
