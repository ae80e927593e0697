package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"

	"barflow/internal/app"
	"barflow/internal/recorder"
	"barflow/internal/resample"
	"barflow/internal/slogx"
)

// App holds the dependencies built by Wire.
type App struct {
	Config   *app.Config
	Options  resample.Options
	Recorder *recorder.Recorder
}

func init() {
	slog.SetDefault(slogx.New("info", "text"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&resampleCmd{}, "")
	subcommands.Register(&watchCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// buildApp loads config, applies the command's flag overrides and runs
// the Wire injector.
func buildApp(override func(cfg *app.Config)) (*App, error) {
	cfg, err := app.Load()
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	slog.SetDefault(slogx.New(cfg.LogLevel, cfg.LogFormat))
	return InitializeApp(cfg)
}
