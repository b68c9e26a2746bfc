package login

import (
	"sync"

	"github.com/fieldbase/admin/internal/domain"
)

// Guard allows one in-flight submission per client. A second submission is
// rejected rather than queued.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire marks key as busy and returns the function that frees it again. It
// fails with domain.ErrBusy when key is already busy. An empty key is never
// guarded.
func (g *Guard) Acquire(key string) (release func(), err error) {
	if key == "" {
		return func() {}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[key]; busy {
		return nil, domain.ErrBusy
	}
	g.inflight[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, nil
}
