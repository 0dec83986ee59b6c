// Package redispool stores recruitment pools in Redis so candidate lists
// survive process restarts without ever touching the game's durable state.
package redispool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = time.Hour

type Pool struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client) *Pool {
	return &Pool{client: client, ttl: defaultTTL}
}

func key(gameID string) string {
	return "recruit:" + gameID
}

func (p *Pool) Put(ctx context.Context, gameID string, candidates []company.Agent) error {
	b, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("encode candidate pool: %w", err)
	}
	if err := p.client.Set(ctx, key(gameID), b, p.ttl).Err(); err != nil {
		return fmt.Errorf("store candidate pool: %w", err)
	}
	return nil
}

func (p *Pool) Find(ctx context.Context, gameID, candidateID string) (company.Agent, error) {
	pool, err := p.load(ctx, gameID)
	if err != nil {
		return company.Agent{}, err
	}
	for _, candidate := range pool {
		if candidate.ID == candidateID {
			return candidate, nil
		}
	}
	return company.Agent{}, ports.ErrNotFound
}

func (p *Pool) Remove(ctx context.Context, gameID, candidateID string) error {
	pool, err := p.load(ctx, gameID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil
		}
		return err
	}
	next := pool[:0]
	for _, candidate := range pool {
		if candidate.ID != candidateID {
			next = append(next, candidate)
		}
	}
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode candidate pool: %w", err)
	}
	if err := p.client.Set(ctx, key(gameID), b, p.ttl).Err(); err != nil {
		return fmt.Errorf("store candidate pool: %w", err)
	}
	return nil
}

func (p *Pool) load(ctx context.Context, gameID string) ([]company.Agent, error) {
	b, err := p.client.Get(ctx, key(gameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}
	var pool []company.Agent
	if err := json.Unmarshal(b, &pool); err != nil {
		return nil, fmt.Errorf("decode candidate pool: %w", err)
	}
	return pool, nil
}
