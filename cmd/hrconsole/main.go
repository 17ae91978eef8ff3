package main

import (
	"context"
	"flag"
	"os"

	clog "github.com/charmbracelet/log"

	"github.com/Sashibhusan12/HrSystem-Repo/internal/app"
)

func main() {
	logger := clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "hrconsole"})

	cfg, err := app.FromEnv()
	if err != nil {
		logger.Fatal("bad environment", "error", err)
	}

	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "backend base URL")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the session database")
	flag.StringVar(&cfg.LogPath, "log", cfg.LogPath, "event log path (NDJSON, empty to disable)")
	flag.StringVar(&cfg.StyleVariant, "theme", cfg.StyleVariant, "style variant (indigo_suite, slate_ledger)")
	flag.BoolVar(&cfg.ASCIIOnly, "ascii", cfg.ASCIIOnly, "render with ASCII glyphs only")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose UI logging")
	flag.Parse()

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal("startup failed", "error", err)
	}
	defer a.Close()

	if err := a.Run(context.Background()); err != nil {
		logger.Fatal("console exited", "error", err)
	}
}
