package alert

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"nowplaying-logger/internal/domain/ports"
)

// Console writes acknowledgments to a terminal.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

var _ ports.Notifier = (*Console)(nil)

// NewConsole returns a Console writing to out, or stdout when out is nil.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// Alert prints message on its own line.
func (c *Console) Alert(_ context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.out, message)
}
