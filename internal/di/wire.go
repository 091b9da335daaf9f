//go:build wireinject

package di

import (
	"github.com/google/wire"

	"nowplaying-logger/internal/adapter/endpoint"
	"nowplaying-logger/internal/adapter/logging"
	"nowplaying-logger/internal/app"
	"nowplaying-logger/internal/config"
	"nowplaying-logger/internal/domain/ports"
	"nowplaying-logger/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideSource,
		provideSelector,
		provideReader,
		provideEndpoint,
		wire.Bind(new(ports.PlaySink), new(*endpoint.Client)),
		wire.Bind(new(app.Flusher), new(*endpoint.Client)),
		provideNotifier,
		provideLogPlayConfig,
		usecase.NewLogPlay,
		wire.Bind(new(app.Trigger), new(*usecase.LogPlay)),
		provideAppOptions,
		app.New,
	)
	return nil, nil
}
