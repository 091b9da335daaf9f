package usecase

import (
	"context"
	"fmt"
	"time"

	"nowplaying-logger/internal/domain/model"
	"nowplaying-logger/internal/domain/ports"
)

// AlertPrefix precedes the song text in the acknowledgment.
const AlertPrefix = "🎵 Logged: "

// LogPlay reads the now-playing text, ships it to the log endpoint and
// acknowledges it to the user. It holds no state between runs.
type LogPlay struct {
	reader   ports.NowPlayingReader
	sink     ports.PlaySink
	notifier ports.Notifier
	logger   ports.Logger
	station  string
	now      func() time.Time
}

// LogPlayConfig controls the record contents.
type LogPlayConfig struct {
	Station string
	Clock   func() time.Time
}

// NewLogPlay constructs the trigger.
func NewLogPlay(
	reader ports.NowPlayingReader,
	sink ports.PlaySink,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg LogPlayConfig,
) *LogPlay {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &LogPlay{
		reader:   reader,
		sink:     sink,
		notifier: notifier,
		logger:   logger,
		station:  cfg.Station,
		now:      now,
	}
}

// Run performs one invocation. It returns a nil play and nil error when the
// now-playing element is absent.
func (l *LogPlay) Run(ctx context.Context) (*model.Play, error) {
	song, found, err := l.reader.ReadNowPlaying(ctx)
	if err != nil {
		return nil, fmt.Errorf("read now playing: %w", err)
	}
	if !found {
		return nil, nil
	}

	play := model.NewPlay(song, l.station, l.now())
	l.sink.Dispatch(ctx, play)
	l.notifier.Alert(ctx, AlertPrefix+song)

	if l.logger != nil {
		l.logger.Info(ctx, "play logged", "song", play.Song, "station", play.Station, "timestamp", play.Timestamp)
	}
	return &play, nil
}
