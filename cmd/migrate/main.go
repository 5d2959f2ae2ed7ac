// Command migrate applies the SQL migrations with goose.
//
//	migrate [-dir ./migrations] up|down|status|version|redo
package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	_ "github.com/lib/pq"
	"github.com/limbo/selfhq/internal/repository"
	"github.com/limbo/selfhq/pkg/config"
	"github.com/pressly/goose"
)

func main() {
	dir := flag.String("dir", "./migrations", "directory with migration files")
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	db, err := sql.Open("postgres", dbCfg.ConnString())
	if err != nil {
		slog.Error("opening db error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		slog.Error("setting dialect error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err = goose.Run(command, db, *dir, flag.Args()[min(1, flag.NArg()):]...); err != nil {
		slog.Error("migration error", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
