// Package world owns the resort state: catalog, customer registry and
// package store. Every read or write of that state goes through View or
// Update so concurrent HTTP handlers never interleave.
package world

import (
	"sync"

	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/registry"
	"github.com/Domenick1991/skiresort/internal/store"
)

type State struct {
	Catalog   *catalog.Catalog
	Customers *registry.Registry
	Packages  *store.Store
}

type World struct {
	mu    sync.RWMutex
	state State
}

func New(c *catalog.Catalog) *World {
	return &World{state: State{
		Catalog:   c,
		Customers: registry.New(),
		Packages:  store.New(),
	}}
}

// View runs fn with shared access. fn must not mutate the state.
func (w *World) View(fn func(*State) error) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return fn(&w.state)
}

// Update runs fn with exclusive access.
func (w *World) Update(fn func(*State) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(&w.state)
}
