package usecase

import (
	"context"
	"sync"

	"nowplaying-logger/internal/domain/model"
)

type stubReader struct {
	mu    sync.Mutex
	texts []string
	found []bool
	err   error
	calls int
}

func (s *stubReader) ReadNowPlaying(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", false, s.err
	}
	i := s.calls
	if i >= len(s.texts) {
		i = len(s.texts) - 1
	}
	s.calls++
	return s.texts[i], s.found[i], nil
}

func present(texts ...string) *stubReader {
	found := make([]bool, len(texts))
	for i := range found {
		found[i] = true
	}
	return &stubReader{texts: texts, found: found}
}

type recordingSink struct {
	mu    sync.Mutex
	plays []model.Play
}

func (r *recordingSink) Dispatch(_ context.Context, play model.Play) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plays = append(r.plays, play)
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Alert(_ context.Context, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
