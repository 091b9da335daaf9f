package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"nowplaying-logger/internal/domain/model"
	"nowplaying-logger/internal/domain/ports"
)

// Trigger is a single logging invocation.
type Trigger interface {
	Run(ctx context.Context) (*model.Play, error)
}

// Flusher drains sends still in flight when the process exits.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Options configures the run mode.
type Options struct {
	Schedule     string
	FlushTimeout time.Duration
}

// App runs the trigger once or on a cron schedule.
type App struct {
	cron         *cron.Cron
	trigger      Trigger
	flusher      Flusher
	logger       ports.Logger
	schedule     string
	flushTimeout time.Duration
}

// New constructs an App instance.
func New(trigger Trigger, flusher Flusher, logger ports.Logger, opts Options) *App {
	return &App{
		cron:         cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		trigger:      trigger,
		flusher:      flusher,
		logger:       logger,
		schedule:     opts.Schedule,
		flushTimeout: opts.FlushTimeout,
	}
}

// Run fires the trigger immediately. Without a schedule it returns after one
// invocation, otherwise it keeps firing until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		_, err := a.trigger.Run(ctx)
		a.flush()
		return err
	}

	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.fire(ctx)

	a.logger.Info(ctx, "starting watcher", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.flush()
	a.logger.Info(context.Background(), "watcher stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		a.fire(ctx)
	})
	if err != nil {
		return err
	}
	return nil
}

func (a *App) fire(ctx context.Context) {
	if _, err := a.trigger.Run(ctx); err != nil {
		a.logger.Error(ctx, "now playing check failed", "error", err)
	}
}

func (a *App) flush() {
	if a.flusher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.flushTimeout)
	defer cancel()
	if err := a.flusher.Flush(ctx); err != nil {
		a.logger.Debug(ctx, "in-flight sends abandoned", "error", err)
	}
}
