package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/selfhq/pkg/cleanup"
)

// Postgres error codes the repositories translate into sentinel errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Connect creates a connection pool shared by the repositories. The pool is closed
// by the cleanup registry on shutdown.
func Connect(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// rollback is deferred right after Begin. It's a no-op once the tx is committed.
func rollback(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		tx.Rollback(ctx)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}
