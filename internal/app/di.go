package app

import (
	"fmt"

	"barflow/internal/calendar"
	"barflow/internal/recorder"
	"barflow/internal/resample"
)

// ProvideOptions maps the configuration onto resampling options,
// resolving the output timezone up front so a bad zone name fails at
// startup (for Wire).
func ProvideOptions(cfg *Config) (resample.Options, error) {
	tz, err := calendar.ResolveZone(cfg.TZ)
	if err != nil {
		return resample.Options{}, err
	}
	return resample.Options{
		Resolution: cfg.Resolution,
		TZ:         tz,
		FFill:      cfg.FFill,
		DropNA:     cfg.DropNA,
	}, nil
}

// ProvideRecorder builds the output recorder from the configured
// destination; its extension picks the format (for Wire).
func ProvideRecorder(cfg *Config) (*recorder.Recorder, error) {
	if cfg.Output == "" {
		return nil, fmt.Errorf("config: OUTPUT not set")
	}
	return recorder.New(cfg.Output)
}
