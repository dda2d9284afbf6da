package spinner

import "sync"

// Service tracks named busy indicators by reference count. Every operation
// pairs one Acquire with exactly one Release, so overlapping fetches cannot
// mask each other's show/hide: the indicator stays on until the last holder
// releases it.
type Service struct {
	mu     sync.Mutex
	counts map[string]int
}

func New() *Service {
	return &Service{counts: make(map[string]int)}
}

// Acquire turns the named indicator on (or keeps it on) for one more holder.
func (s *Service) Acquire(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[name]++
}

// Release drops one holder. Releasing an idle indicator is a no-op so an
// unbalanced caller cannot push the count negative.
func (s *Service) Release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts[name] <= 1 {
		delete(s.counts, name)
		return
	}
	s.counts[name]--
}

// Busy reports whether the named indicator has at least one holder.
func (s *Service) Busy(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[name] > 0
}
