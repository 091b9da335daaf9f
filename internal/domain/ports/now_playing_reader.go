package ports

import "context"

// NowPlayingReader extracts the now-playing text from the current page.
// found is false when the designated element is absent.
type NowPlayingReader interface {
	ReadNowPlaying(ctx context.Context) (text string, found bool, err error)
}
