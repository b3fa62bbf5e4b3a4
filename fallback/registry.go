// Package fallback - the concurrent strategy registry.
package fallback

import (
	"sort"
	"sync"
)

// Registry holds strategies sorted by descending priority. It is safe
// for concurrent use; the engine executes against point-in-time
// snapshots, so mutations never affect an in-flight walk.
type Registry struct {
	mu         sync.RWMutex
	strategies []Strategy
}

// NewRegistry builds a registry preloaded with the given strategies.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{}
	for _, s := range strategies {
		r.Add(s)
	}
	return r
}

// Add registers a strategy and re-sorts. Equal priorities keep
// registration order.
func (r *Registry) Add(s Strategy) {
	if s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies = append(r.strategies, s)
	sort.SliceStable(r.strategies, func(i, j int) bool {
		return r.strategies[i].Priority() > r.strategies[j].Priority()
	})
}

// Remove deregisters every strategy with the given name and reports
// whether any was removed.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.strategies[:0]
	removed := false
	for _, s := range r.strategies {
		if s.Name() == name {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	r.strategies = kept
	return removed
}

// Len reports the number of registered strategies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.strategies)
}

// Snapshot returns the current strategies in execution order.
func (r *Registry) Snapshot() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Strategy(nil), r.strategies...)
}
