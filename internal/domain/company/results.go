package company

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// ResultsCalculator derives one day of business results from the roster.
// It owns its randomness source; under a fixed seed, identical inputs
// produce identical results. Safe for concurrent use: draws are serialized
// because one calculator is shared by every request handler.
type ResultsCalculator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewResultsCalculator(rng *rand.Rand) *ResultsCalculator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ResultsCalculator{rng: rng}
}

// Compute turns the roster state and the day's one-time costs into business
// results. Each agent's output is skill_factor × productivity × (0.6 +
// motivation/100), jittered by a uniform variance in [VarianceMin,
// VarianceMax] and scaled by RevenuePerOutput.
func (c *ResultsCalculator) Compute(roster []Agent, extraCosts float64) BusinessResults {
	c.mu.Lock()
	defer c.mu.Unlock()

	revenue := 0.0
	for _, agent := range roster {
		skillSum := 0
		for _, score := range agent.Skills {
			skillSum += score
		}
		skillFactor := float64(skillSum) / float64(len(agent.Skills)*MaxSkillScore)
		motivationFactor := agent.Motivation / 100
		output := skillFactor * agent.Productivity * (0.6 + motivationFactor)
		variance := VarianceMin + c.rng.Float64()*(VarianceMax-VarianceMin)
		revenue += output * RevenuePerOutput * variance
	}

	costs := extraCosts + MaintenanceBase + MaintenancePerHead*float64(len(roster))
	for _, agent := range roster {
		costs += float64(agent.Salary) / WorkingDaysPerYear
	}

	headcount := float64(len(roster))
	innovations := int(math.Max(0, c.rng.NormFloat64()*InnovationStdDev+headcount*InnovationRatePerHead))
	errCount := int(math.Max(0, c.rng.NormFloat64()*ErrorStdDev+headcount*ErrorRatePerHead))

	clients := int(revenue / RevenuePerClient)
	if clients < 0 {
		clients = 0
	}

	revenue = round2(revenue)
	costs = round2(costs)

	return BusinessResults{
		Revenue:     revenue,
		Costs:       costs,
		Net:         round2(revenue - costs),
		Clients:     clients,
		Errors:      errCount,
		Innovations: innovations,
	}
}
