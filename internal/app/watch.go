package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"barflow/internal/feed"
	"barflow/internal/recorder"
	"barflow/internal/resample"
	"barflow/internal/schedule"
	"barflow/internal/slogx"
)

// RunWatch polls the configured endpoint at a fixed cadence, resamples
// the returned window and records the bars. It blocks until SIGINT or
// SIGTERM and shuts the scheduler down without leaving a cycle in flight.
func RunWatch(cfg *Config, opts resample.Options, rec *recorder.Recorder) error {
	if cfg.PollURL == "" {
		return fmt.Errorf("config: POLL_URL not set")
	}
	src := feed.NewHTTPSource(cfg.PollURL, cfg.Kind(), cfg.PollMaxRPS)
	interval := time.Duration(cfg.PollIntervalSec) * time.Second

	rep := &runReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
	var mu sync.Mutex

	lines := make(chan string, 256)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range lines {
			fmt.Println(line)
			mu.Lock()
			rep.appendLog(line)
			mu.Unlock()
		}
	}()
	logger := slogx.NewChanLogger(lines, cfg.LogLevel)

	logger.Info("watch started", "run_id", rep.RunID, "url", cfg.PollURL,
		"resolution", cfg.Resolution, "interval", interval)

	task := schedule.Every(interval, 0, func() {
		mu.Lock()
		rep.Cycles++
		mu.Unlock()
		if err := watchCycle(src, opts, rec, interval, rep, &mu, logger); err != nil {
			mu.Lock()
			rep.Failures++
			rep.LastError = err.Error()
			mu.Unlock()
			logger.Error("cycle failed", "error", err)
		}
		mu.Lock()
		if err := writeRunReport(cfg.ReportDir, rep); err != nil {
			logger.Warn("could not write run report", "error", err)
		}
		mu.Unlock()
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	logger.Info("received signal, stopping", "sig", sig.String())
	task.Stop()

	close(lines)
	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	return writeRunReport(cfg.ReportDir, rep)
}

func watchCycle(src *feed.HTTPSource, opts resample.Options, rec *recorder.Recorder,
	timeout time.Duration, rep *runReport, mu *sync.Mutex, logger *slog.Logger) error {

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ds, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	bars, err := resample.Resample(ds, opts)
	if err != nil {
		return err
	}
	if err := rec.RecordBars(bars, nil); err != nil {
		return err
	}
	mu.Lock()
	rep.Bars += len(bars)
	mu.Unlock()
	logger.Info("cycle done", "rows", len(ds.Rows), "bars", len(bars))
	return nil
}
