package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var errSchemaMissing = errors.New("schema not migrated")

// PostgresChecker pings the pool and confirms the recruitment tables exist.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	var ok bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('public.applications') IS NOT NULL`).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return errSchemaMissing
	}
	return nil
}
