package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"wellness/internal/logging"
)

// Globals are the flags shared by every command.
type Globals struct {
	Store       string `help:"Storage backend." enum:"csv,memory,sqlite,postgres" default:"csv" env:"STORE"`
	DataDir     string `help:"Directory holding the CSV files." default:"data" env:"DATA_DIR" type:"path"`
	DatabaseURL string `help:"PostgreSQL connection string for --store=postgres." env:"DATABASE_URL"`
	SQLitePath  string `name:"sqlite-path" help:"Database file for --store=sqlite." default:"data/wellness.db" env:"SQLITE_PATH" type:"path"`

	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"LOG_LEVEL"`
	LogFile  string `help:"Also write logs to this rotated file." env:"LOG_FILE" type:"path"`
	LogJSON  bool   `name:"log-json" help:"Emit JSON log lines." env:"LOG_JSON"`

	logger *log.Logger
}

var CLI struct {
	Globals

	Serve  ServeCmd  `cmd:"" help:"Run the HTTP server." default:"1"`
	Seed   SeedCmd   `cmd:"" help:"Regenerate sample history for every user."`
	Report ReportCmd `cmd:"" help:"Print a user's summary and tips."`
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("wellness"),
		kong.Description("Daily wellness tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	logger, err := logging.New(logging.Config{
		Level: CLI.LogLevel,
		File:  CLI.LogFile,
		JSON:  CLI.LogJSON,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	CLI.logger = logger

	if err := ctx.Run(&CLI.Globals); err != nil {
		logger.Error("command failed", "cmd", ctx.Command(), "err", err)
		os.Exit(1)
	}
}
