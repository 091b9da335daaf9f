package ports

import (
	"context"

	"nowplaying-logger/internal/domain/model"
)

// PlaySink accepts plays for delivery. Dispatch must not block on the network
// and reports nothing about the outcome.
type PlaySink interface {
	Dispatch(ctx context.Context, play model.Play)
}
