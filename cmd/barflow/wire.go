//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"barflow/internal/app"
)

// InitializeApp builds App (Options + Recorder) from a loaded config.
func InitializeApp(cfg *app.Config) (*App, error) {
	wire.Build(
		app.ProvideOptions,
		app.ProvideRecorder,
		wire.Struct(new(App), "Config", "Options", "Recorder"),
	)
	return nil, nil
}
