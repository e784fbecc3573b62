package db

import (
	"context"
	"fmt"

	"bid-portal/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDb initializes the database connection and returns the pool
func InitDb(cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.PostgresConn == "" {
		return nil, fmt.Errorf("POSTGRES_CONN is not configured")
	}

	dbPool, err := pgxpool.New(context.Background(), cfg.PostgresConn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}
	return dbPool, nil
}
