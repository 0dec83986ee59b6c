package company

// ApplyResults returns the company ledger after one resolved day: revenue
// and costs reflect the day's results, cash moves by exactly the net.
func (c Company) ApplyResults(r BusinessResults) Company {
	c.Revenue = r.Revenue
	c.Costs = r.Costs
	c.Cash = round2(c.Cash + r.Net)
	return c
}

// BuildInsights snapshots the roster for the day report. Only highly
// autonomous agents carry a note.
func BuildInsights(roster []Agent) []AgentInsight {
	out := make([]AgentInsight, 0, len(roster))
	for _, agent := range roster {
		insight := AgentInsight{
			AgentID:      agent.ID,
			Name:         agent.Name,
			Motivation:   agent.Motivation,
			Stability:    agent.Stability,
			Productivity: agent.Productivity,
		}
		if agent.Autonomy == AutonomyHigh {
			insight.Note = NoteAutonomous
		}
		out = append(out, insight)
	}
	return out
}

// NewDayReport assembles the report for one day, recommendations left empty
// for the advisor to fill in. An empty decision list becomes the placeholder
// note.
func NewDayReport(day int, roster []Agent, results BusinessResults, decisions []string) DayReport {
	if len(decisions) == 0 {
		decisions = []string{NoteNoDecision}
	}
	return DayReport{
		Day:             day,
		AgentSituation:  BuildInsights(roster),
		Results:         results,
		DecisionsImpact: decisions,
		Recommendations: []string{},
	}
}
