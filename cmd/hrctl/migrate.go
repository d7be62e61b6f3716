package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruitment/pkg/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, _, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer pool.Close()

		v, err := postgres.SchemaVersion(cmd.Context(), pool)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
