package di

import (
	"log/slog"
	"os"

	"nowplaying-logger/internal/adapter/alert"
	"nowplaying-logger/internal/adapter/endpoint"
	"nowplaying-logger/internal/adapter/logging"
	"nowplaying-logger/internal/adapter/page"
	"nowplaying-logger/internal/app"
	"nowplaying-logger/internal/config"
	"nowplaying-logger/internal/domain/ports"
	"nowplaying-logger/internal/usecase"
)

// stdout carries the alerts, so logs go to stderr.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	return slog.New(handler)
}

func provideSource(cfg *config.Config) page.Source {
	if cfg.PageFile != "" {
		return page.NewFileSource(cfg.PageFile)
	}
	return page.NewHTTPSource(cfg.PageURL, cfg.RequestTimeout)
}

func provideSelector(cfg *config.Config) (*page.Selector, error) {
	return page.Compile(cfg.Selector)
}

func provideReader(cfg *config.Config, source page.Source, selector *page.Selector, logger ports.Logger) ports.NowPlayingReader {
	reader := page.NewReader(source, selector, logger)
	if cfg.Watch() {
		return usecase.NewOnChange(reader)
	}
	return reader
}

func provideEndpoint(cfg *config.Config, logger ports.Logger) *endpoint.Client {
	return endpoint.New(cfg.EndpointURL, cfg.SendTimeout, logger)
}

func provideNotifier() ports.Notifier {
	return alert.NewConsole(os.Stdout)
}

func provideLogPlayConfig(cfg *config.Config) usecase.LogPlayConfig {
	return usecase.LogPlayConfig{Station: cfg.Station}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:     cfg.WatchSchedule,
		FlushTimeout: cfg.FlushTimeout,
	}
}
