package font

import "sync"

// notices rate-limits diagnostics about font resolution to one message
// per topic per process. Interactive use re-resolves fonts on every
// redraw; without limiting, a missing font would flood the trace.
type notices struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newNotices() *notices {
	return &notices{seen: make(map[string]bool)}
}

// first reports whether topic has not been noticed before, and marks it.
func (n *notices) first(topic string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seen[topic] {
		return false
	}
	n.seen[topic] = true
	return true
}

func (n *notices) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = make(map[string]bool)
}
