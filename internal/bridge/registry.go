package bridge

import (
	"fmt"
	"slices"
	"sync"
)

// CodeClassNotFound is reported for calls to an unregistered target.
const CodeClassNotFound = "ClassNotFound"

// Registry routes bridge calls to plugins by target name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

func (r *Registry) Register(target string, p Plugin) error {
	if target == "" {
		return fmt.Errorf("bridge: empty target name")
	}
	if p == nil {
		return fmt.Errorf("bridge: nil plugin for %q", target)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[target]; exists {
		return fmt.Errorf("bridge: target %q already registered", target)
	}
	r.plugins[target] = p
	return nil
}

func (r *Registry) MustRegister(target string, p Plugin) {
	if err := r.Register(target, p); err != nil {
		panic(err)
	}
}

// Replace registers p under target, dropping any previous plugin.
func (r *Registry) Replace(target string, p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[target] = p
}

func (r *Registry) Lookup(target string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[target]
	return p, ok
}

// Targets returns the registered target names, sorted.
func (r *Registry) Targets() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Exec implements webshare.Bridge.
func (r *Registry) Exec(target, method string, args []any, success func(any), failure func(string)) {
	p, ok := r.Lookup(target)
	if !ok {
		failure(CodeClassNotFound)
		return
	}
	p.Exec(method, args, success, failure)
}

var global = NewRegistry()

// Default returns the process wide registry.
func Default() *Registry {
	return global
}

// Register adds p to the process wide registry.
func Register(target string, p Plugin) error {
	return global.Register(target, p)
}
