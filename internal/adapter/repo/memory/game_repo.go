// Package memory holds the in-process repository used when no database is
// configured (local runs, tests). It mimics the gorm adapter's contract,
// including the manager-action journal.
package memory

import (
	"context"
	"sync"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

type actionRecord struct {
	Day     int
	Actions []company.ManagerAction
}

type GameRepo struct {
	mu      sync.RWMutex
	games   map[string]company.GameState
	journal map[string][]actionRecord
}

func NewGameRepo() *GameRepo {
	return &GameRepo{
		games:   map[string]company.GameState{},
		journal: map[string][]actionRecord{},
	}
}

func (r *GameRepo) Create(_ context.Context, state company.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.games[state.GameID]; exists {
		return ports.ErrConflict
	}
	r.games[state.GameID] = state
	return nil
}

func (r *GameRepo) Get(_ context.Context, gameID string) (company.GameState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.games[gameID]
	if !ok {
		return company.GameState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *GameRepo) Save(_ context.Context, state company.GameState, actions []company.ManagerAction, actionDay int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[state.GameID]; !ok {
		return ports.ErrNotFound
	}
	r.games[state.GameID] = state
	if len(actions) > 0 {
		r.journal[state.GameID] = append(r.journal[state.GameID], actionRecord{Day: actionDay, Actions: actions})
	}
	return nil
}
