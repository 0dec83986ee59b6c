package game

import (
	"context"
	"fmt"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

const maxRecommendations = 4

// finalizeDay computes the day's results, applies them to the ledger and
// asks the advisor to phrase recommendations. The state it returns carries
// the updated company and the finished report; nothing has been persisted
// yet, so an advisor failure leaves the stored game untouched.
func finalizeDay(ctx context.Context, advisor ports.Advisor, calc *company.ResultsCalculator, state company.GameState, decisions []string, extraCosts float64) (company.GameState, company.DayReport, error) {
	results := calc.Compute(state.Agents, extraCosts)
	state.Company = state.Company.ApplyResults(results)

	report := company.NewDayReport(state.Day, state.Agents, results, decisions)
	recommendations, err := advisor.Recommend(ctx, state, report)
	if err != nil {
		return company.GameState{}, company.DayReport{}, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
	}
	if len(recommendations) == 0 {
		return company.GameState{}, company.DayReport{}, fmt.Errorf("%w: empty recommendations", ports.ErrUpstream)
	}
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	report.Recommendations = recommendations

	state.LastReport = &report
	return state, report, nil
}

func runInTx(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	if tx == nil {
		return fn(ctx)
	}
	return tx.RunInTx(ctx, fn)
}
