package main

import (
	"context"
	"flag"
	"log/slog"
	"strconv"

	"github.com/google/subcommands"

	"barflow/internal/app"
)

// watchCmd runs the live polling loop: fetch, resample, record, repeat.
type watchCmd struct {
	url        string
	out        string
	resolution string
	interval   string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "poll an endpoint and record resampled bars" }
func (*watchCmd) Usage() string {
	return `watch -url http://feed/rows -out bars.parquet [-resolution 1T] [-interval 60]:
  Poll the endpoint at a fixed cadence until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "endpoint returning a JSON row array")
	f.StringVar(&c.out, "out", "", "output file (.csv, .parquet, .json)")
	f.StringVar(&c.resolution, "resolution", "", "bucketing policy")
	f.StringVar(&c.interval, "interval", "", "poll interval in seconds")
}

func (c *watchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := buildApp(func(cfg *app.Config) {
		overrideString(&cfg.PollURL, c.url)
		overrideString(&cfg.Output, c.out)
		overrideString(&cfg.Resolution, c.resolution)
		if c.interval != "" {
			if n, err := strconv.Atoi(c.interval); err == nil && n > 0 {
				cfg.PollIntervalSec = n
			}
		}
	})
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		return subcommands.ExitFailure
	}
	if err := app.RunWatch(a.Config, a.Options, a.Recorder); err != nil {
		slog.Error("watch failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func overrideBool(dst *bool, v string) {
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	}
}
