// Command hrctl is the operator CLI for the recruitment service: schema
// migrations, account provisioning, demo data and offline match scoring.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/artem13815/recruitment/pkg/config"
	"github.com/artem13815/recruitment/pkg/logging"
	"github.com/artem13815/recruitment/pkg/storage/postgres"
)

var rootCmd = &cobra.Command{
	Use:           "hrctl",
	Short:         "Recruitment service operator tool",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var databaseURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres DSN (defaults to DATABASE_URL)")
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// openDB connects and migrates, so every command sees the current schema.
func openDB(ctx context.Context) (*pgxpool.Pool, *logging.Logger, error) {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	dsn := databaseURL
	if dsn == "" {
		dsn = cfg.DatabaseURL
	}
	if dsn == "" {
		return nil, nil, errors.New("database url is not set: use --database-url or DATABASE_URL")
	}
	pool, err := postgres.Connect(ctx, dsn, postgres.PoolOptions{MaxConns: 2, ApplicationName: "hrctl"})
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return pool, log, nil
}
