package ports

import "context"

// Notifier shows a one-shot acknowledgment to the user.
type Notifier interface {
	Alert(ctx context.Context, message string)
}
