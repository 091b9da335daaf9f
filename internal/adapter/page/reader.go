package page

import (
	"context"

	"nowplaying-logger/internal/domain/ports"
)

// Reader finds the now-playing element in a loaded page.
type Reader struct {
	source   Source
	selector *Selector
	logger   ports.Logger
}

var _ ports.NowPlayingReader = (*Reader)(nil)

// NewReader joins a page source with the selector marking the now-playing element.
func NewReader(source Source, selector *Selector, logger ports.Logger) *Reader {
	return &Reader{
		source:   source,
		selector: selector,
		logger:   logger,
	}
}

// ReadNowPlaying returns the element's text content. found is false when no
// element matches.
func (r *Reader) ReadNowPlaying(ctx context.Context) (string, bool, error) {
	doc, err := r.source.Load(ctx)
	if err != nil {
		return "", false, err
	}

	node := r.selector.First(doc)
	if node == nil {
		if r.logger != nil {
			r.logger.Debug(ctx, "now playing element not found", "selector", r.selector.String())
		}
		return "", false, nil
	}

	return TextContent(node), true, nil
}
