package ports

import (
	"context"

	"simcorp/internal/domain/company"
)

// GameRepository durably associates a game id with its latest day's state.
// Save may additionally journal the action batch that produced the state,
// keyed by the day it was submitted on.
type GameRepository interface {
	Create(ctx context.Context, state company.GameState) error
	Get(ctx context.Context, gameID string) (company.GameState, error)
	Save(ctx context.Context, state company.GameState, actions []company.ManagerAction, actionDay int) error
}

// CandidatePool holds transient recruitment pools per game. Candidates are
// never part of the persisted roster until hired.
type CandidatePool interface {
	Put(ctx context.Context, gameID string, candidates []company.Agent) error
	Find(ctx context.Context, gameID, candidateID string) (company.Agent, error)
	Remove(ctx context.Context, gameID, candidateID string) error
}
