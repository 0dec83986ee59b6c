package game

import (
	"context"
	"errors"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

var ErrInvalidRequest = errors.New("invalid game request")

type StartUseCase struct {
	Tx      ports.TxManager
	Repo    ports.GameRepository
	Advisor ports.Advisor
	Metrics ports.GameMetrics
	Gen     *company.Generator
	Calc    *company.ResultsCalculator
}

type StartRequest struct {
	CompanyName string
}

type StartResponse struct {
	State company.GameState
}

func (u StartUseCase) Execute(ctx context.Context, req StartRequest) (StartResponse, error) {
	if strings.TrimSpace(req.CompanyName) == "" {
		return StartResponse{}, ErrInvalidRequest
	}

	state := u.Gen.NewInitialState(req.CompanyName)
	state, _, err := finalizeDay(ctx, u.Advisor, u.Calc, state, []string{company.NoteGameCreated}, 0)
	if err != nil {
		u.recordFailure(err)
		return StartResponse{}, err
	}

	if err := runInTx(ctx, u.Tx, func(txCtx context.Context) error {
		return u.Repo.Create(txCtx, state)
	}); err != nil {
		u.recordFailure(err)
		return StartResponse{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordDayResolved()
	}
	return StartResponse{State: state}, nil
}

func (u StartUseCase) recordFailure(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrUpstream) {
		u.Metrics.RecordAdvisorFailure()
		return
	}
	u.Metrics.RecordFailure()
}
