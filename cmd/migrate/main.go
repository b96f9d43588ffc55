// Command migrate applies or reverts the embedded SQLite schema migrations.
//
//	migrate [-db chat_app.db] up|down|status
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"chatApp/internal/db"
	"chatApp/internal/logging"
)

func main() {
	_ = godotenv.Load()

	defaultPath := os.Getenv("DB_PATH")
	if defaultPath == "" {
		defaultPath = db.DefaultPath
	}
	path := flag.String("db", defaultPath, "SQLite database file")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, err := logging.New(*level, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-db path] up|down|status")
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *path, log); err != nil {
		log.Error("migrate failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cmd, path string, log *slog.Logger) error {
	d, err := db.Connect(path)
	if err != nil {
		return err
	}
	defer d.Close()

	switch cmd {
	case "up":
		if err := db.Migrate(d); err != nil {
			return err
		}
	case "down":
		v, err := db.RollbackLast(d)
		if err != nil {
			return err
		}
		if v == 0 {
			log.Info("nothing to roll back")
			return nil
		}
		log.Info("rolled back", slog.Int("version", v))
		return nil
	case "status":
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	versions, err := db.AppliedVersions(d)
	if err != nil {
		return err
	}
	log.Info("schema", slog.String("path", path), slog.Any("applied", versions))
	return nil
}
