package memory

import (
	"context"
	"sync"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

type CandidatePool struct {
	mu    sync.RWMutex
	pools map[string][]company.Agent
}

func NewCandidatePool() *CandidatePool {
	return &CandidatePool{pools: map[string][]company.Agent{}}
}

func (p *CandidatePool) Put(_ context.Context, gameID string, candidates []company.Agent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pools[gameID] = append([]company.Agent(nil), candidates...)
	return nil
}

func (p *CandidatePool) Find(_ context.Context, gameID, candidateID string) (company.Agent, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, candidate := range p.pools[gameID] {
		if candidate.ID == candidateID {
			return candidate, nil
		}
	}
	return company.Agent{}, ports.ErrNotFound
}

func (p *CandidatePool) Remove(_ context.Context, gameID, candidateID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	pool := p.pools[gameID]
	next := pool[:0]
	for _, candidate := range pool {
		if candidate.ID != candidateID {
			next = append(next, candidate)
		}
	}
	p.pools[gameID] = next
	return nil
}
