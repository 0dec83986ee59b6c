package recruit

import (
	"context"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

// HireUseCase moves a previously generated candidate from the recruitment
// pool onto the persisted roster. The day counter is unchanged.
type HireUseCase struct {
	Tx      ports.TxManager
	Repo    ports.GameRepository
	Pool    ports.CandidatePool
	Metrics ports.GameMetrics
}

type HireRequest struct {
	GameID      string
	CandidateID string
}

type HireResponse struct {
	State company.GameState
}

func (u HireUseCase) Execute(ctx context.Context, req HireRequest) (HireResponse, error) {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.CandidateID) == "" {
		return HireResponse{}, ErrInvalidRequest
	}

	state, err := u.Repo.Get(ctx, req.GameID)
	if err != nil {
		return HireResponse{}, err
	}
	candidate, err := u.Pool.Find(ctx, req.GameID, req.CandidateID)
	if err != nil {
		return HireResponse{}, err
	}

	state.Agents = append(state.Agents, candidate)

	err = runInTx(ctx, u.Tx, func(txCtx context.Context) error {
		return u.Repo.Save(txCtx, state, nil, 0)
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return HireResponse{}, err
	}

	// Pool cleanup is best effort: the hire is already durable.
	_ = u.Pool.Remove(ctx, req.GameID, req.CandidateID)

	if u.Metrics != nil {
		u.Metrics.RecordHire()
	}
	return HireResponse{State: state}, nil
}

func runInTx(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.RunInTx(ctx, fn)
}
