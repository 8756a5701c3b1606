package tool

import (
	"sort"
	"sync"

	"github.com/matzehuels/stickfigure/pkg/errors"
)

// Registry maps tool keys to tools. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds t under t.Key(). Registering a key twice is an error.
func (r *Registry) Register(t Tool) error {
	if err := errors.ValidateToolKey(t.Key()); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[t.Key()]; ok {
		return errors.New(errors.ErrCodeInvalidKey, "tool %q already registered", t.Key())
	}
	r.tools[t.Key()] = t
	return nil
}

// Get returns the tool registered under key.
func (r *Registry) Get(key string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeToolNotFound, "no tool %q", key)
	}
	return t, nil
}

// Tools returns all registered tools ordered by key.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
