package games

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages game registration and lookup by id. Thread-safe.
type Registry struct {
	games map[string]Game
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]Game),
	}
}

// Default returns a registry holding the five shipped games.
func Default() *Registry {
	r := NewRegistry()
	_ = r.Register(NewMatchPairs())
	_ = r.Register(NewHeartClick())
	_ = r.Register(NewLoveWord())
	_ = r.Register(NewCupidAim())
	_ = r.Register(NewSweetSort())
	return r
}

func (r *Registry) Register(g Game) error {
	if g == nil {
		return fmt.Errorf("cannot register nil game")
	}
	if g.ID() == "" {
		return fmt.Errorf("game id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.ID()] = g
	return nil
}

func (r *Registry) Get(id string) (Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

// List returns all registered games ordered by id.
func (r *Registry) List() []Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
