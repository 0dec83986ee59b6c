package game

import (
	"context"
	"errors"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

type ActUseCase struct {
	Tx      ports.TxManager
	Repo    ports.GameRepository
	Advisor ports.Advisor
	Metrics ports.GameMetrics
	Calc    *company.ResultsCalculator
}

type ActRequest struct {
	GameID  string
	Actions []company.ManagerAction
}

type ActResponse struct {
	State  company.GameState
	Report company.DayReport
}

// Execute resolves one day: the action batch is applied to the current
// roster, the day counter advances by exactly one and the new day's report
// is computed and persisted together with the raw batch for audit. Any
// failure leaves the stored state exactly as it was.
func (u ActUseCase) Execute(ctx context.Context, req ActRequest) (ActResponse, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return ActResponse{}, ErrInvalidRequest
	}

	state, err := u.Repo.Get(ctx, req.GameID)
	if err != nil {
		return ActResponse{}, err
	}

	roster, decisions, extraCosts, err := company.ResolveActions(state.Agents, req.Actions)
	if err != nil {
		return ActResponse{}, err
	}

	actionDay := state.Day
	next := company.GameState{
		GameID:  state.GameID,
		Day:     state.Day + 1,
		Company: state.Company,
		Agents:  roster,
	}

	next, report, err := finalizeDay(ctx, u.Advisor, u.Calc, next, decisions, extraCosts)
	if err != nil {
		u.recordFailure(err)
		return ActResponse{}, err
	}

	if err := runInTx(ctx, u.Tx, func(txCtx context.Context) error {
		return u.Repo.Save(txCtx, next, req.Actions, actionDay)
	}); err != nil {
		u.recordFailure(err)
		return ActResponse{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordDayResolved()
	}
	return ActResponse{State: next, Report: report}, nil
}

func (u ActUseCase) recordFailure(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrUpstream) {
		u.Metrics.RecordAdvisorFailure()
		return
	}
	u.Metrics.RecordFailure()
}
