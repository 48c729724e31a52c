// Package source keeps the catalog of event providers so the
// aggregator can be assembled from configuration by name.
package source

import (
	"fmt"

	"HistoryScanner/internal/ports"
)

// Registry keeps a mapping from provider names to their implementations.
type Registry struct {
	sources map[string]ports.EventSource
	order   []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.EventSource{}}
}

// Register adds or replaces an event source implementation.
func (r *Registry) Register(src ports.EventSource) {
	if r.sources == nil {
		r.sources = map[string]ports.EventSource{}
	}
	if _, ok := r.sources[src.Name()]; !ok {
		r.order = append(r.order, src.Name())
	}
	r.sources[src.Name()] = src
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.EventSource, error) {
	if src, ok := r.sources[name]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("source %s is not registered", name)
}

// Enabled returns the sources matching names, in registration order.
// Unknown names are reported as an error so config typos fail loudly.
func (r *Registry) Enabled(names []string) ([]ports.EventSource, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.sources[name]; !ok {
			return nil, fmt.Errorf("source %s is not registered", name)
		}
		want[name] = true
	}

	var enabled []ports.EventSource
	for _, name := range r.order {
		if want[name] {
			enabled = append(enabled, r.sources[name])
		}
	}
	return enabled, nil
}
