package main

import (
	"context"
	"customers/internal/config"
	"customers/pkg/domain"
	"customers/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// industriesCommand constructs the 'industries' subcommand that prints the
// industry catalog and whether each entry is present in the database.
func industriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "industries",
		Short: "Prints the industry catalog and checks it against the database",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			missing := 0
			for _, industry := range domain.Industries() {
				stored, err := strg.IndustryByID(ctx, industry.ID())
				if err != nil {
					logger.Fatal(ctx, "could not read industry", zap.Int64("id", industry.ID()), zap.Error(err))
				}

				state := "ok"
				if stored.HasNoValue() {
					state = "missing"
					missing++
				}
				fmt.Printf("%d\t%s\t%s\n", industry.ID(), industry.Name(), state) //nolint: forbidigo
			}

			if missing > 0 {
				logger.Fatal(ctx, "industries are missing from the database, run migrate", zap.Int("missing", missing))
			}
		},
	}

	return cmd
}
