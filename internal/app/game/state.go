package game

import (
	"context"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

type StateUseCase struct {
	Repo ports.GameRepository
}

type StateRequest struct {
	GameID string
}

type StateResponse struct {
	State company.GameState
}

func (u StateUseCase) Execute(ctx context.Context, req StateRequest) (StateResponse, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return StateResponse{}, ErrInvalidRequest
	}
	state, err := u.Repo.Get(ctx, req.GameID)
	if err != nil {
		return StateResponse{}, err
	}
	return StateResponse{State: state}, nil
}
