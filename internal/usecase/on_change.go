package usecase

import (
	"context"
	"sync"

	"nowplaying-logger/internal/domain/ports"
)

// OnChange wraps a reader so that a song is reported only when it differs from
// the previously reported one. Watch mode uses it to log each song once.
type OnChange struct {
	next ports.NowPlayingReader

	mu   sync.Mutex
	last string
	seen bool
}

var _ ports.NowPlayingReader = (*OnChange)(nil)

// NewOnChange decorates next.
func NewOnChange(next ports.NowPlayingReader) *OnChange {
	return &OnChange{next: next}
}

// ReadNowPlaying reports found only for a new song.
func (o *OnChange) ReadNowPlaying(ctx context.Context) (string, bool, error) {
	text, found, err := o.next.ReadNowPlaying(ctx)
	if err != nil || !found {
		return text, false, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.seen && text == o.last {
		return "", false, nil
	}
	o.last, o.seen = text, true
	return text, true, nil
}
