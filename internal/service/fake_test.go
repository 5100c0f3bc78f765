package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// scriptedGenerator replays a fixed sequence of responses and then repeats
// the last one.
type scriptedGenerator struct {
	mu        sync.Mutex
	responses []response
	calls     int
	deadlines []bool
}

type response struct {
	data []byte
	err  error
}

func (s *scriptedGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := ctx.Deadline()
	s.deadlines = append(s.deadlines, ok)
	i := s.calls
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	s.calls++
	return s.responses[i].data, s.responses[i].err
}

func (s *scriptedGenerator) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// recordingSleep stands in for the backoff timer.
type recordingSleep struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return nil
}

// gatedGenerator holds every call until limit calls are in flight at once
// (or a safety timeout passes), tracking the peak concurrency.
type gatedGenerator struct {
	limit    int32
	inFlight atomic.Int32
	peak     atomic.Int32
	calls    atomic.Int32
	release  chan struct{}
	once     sync.Once
}

func newGatedGenerator(limit int32) *gatedGenerator {
	return &gatedGenerator{limit: limit, release: make(chan struct{})}
}

func (g *gatedGenerator) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	g.calls.Add(1)
	n := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if n >= g.limit {
		g.once.Do(func() { close(g.release) })
	}
	select {
	case <-g.release:
	case <-time.After(2 * time.Second):
	}
	return []byte("image"), nil
}
