package company

import (
	"reflect"
	"testing"
)

func TestApplyResults_MovesCashByNet(t *testing.T) {
	c := Company{Name: "Nova Corp", Cash: 120_000}
	r := BusinessResults{Revenue: 3500.50, Costs: 1200.25, Net: 2300.25}

	next := c.ApplyResults(r)

	if next.Cash != 122_300.25 {
		t.Fatalf("expected cash 122300.25, got %v", next.Cash)
	}
	if next.Revenue != r.Revenue || next.Costs != r.Costs {
		t.Fatalf("expected ledger to carry the day's results, got %+v", next)
	}
	if c.Cash != 120_000 {
		t.Fatalf("receiver was mutated: %v", c.Cash)
	}
}

func TestApplyResults_NegativeNet(t *testing.T) {
	c := Company{Cash: 1000}
	next := c.ApplyResults(BusinessResults{Revenue: 100, Costs: 400, Net: -300})
	if next.Cash != 700 {
		t.Fatalf("expected cash 700, got %v", next.Cash)
	}
}

func TestBuildInsights_NoteOnlyForHighAutonomy(t *testing.T) {
	low := testAgent("a-1", "Nova")
	low.Autonomy = AutonomyLow
	high := testAgent("a-2", "Atlas")
	high.Autonomy = AutonomyHigh

	insights := BuildInsights([]Agent{low, high})

	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}
	if insights[0].Note != "" {
		t.Fatalf("unexpected note for low autonomy: %q", insights[0].Note)
	}
	if insights[1].Note != NoteAutonomous {
		t.Fatalf("expected %q note, got %q", NoteAutonomous, insights[1].Note)
	}
	if insights[1].AgentID != "a-2" || insights[1].Name != "Atlas" {
		t.Fatalf("unexpected identity fields: %+v", insights[1])
	}
}

func TestNewDayReport_PlaceholderOnEmptyDecisions(t *testing.T) {
	report := NewDayReport(4, nil, BusinessResults{}, nil)

	if report.Day != 4 {
		t.Fatalf("expected day 4, got %d", report.Day)
	}
	if !reflect.DeepEqual(report.DecisionsImpact, []string{NoteNoDecision}) {
		t.Fatalf("expected placeholder decision, got %v", report.DecisionsImpact)
	}
	if report.Recommendations == nil || len(report.Recommendations) != 0 {
		t.Fatalf("expected empty recommendations slice, got %v", report.Recommendations)
	}
}

func TestNewDayReport_KeepsDecisions(t *testing.T) {
	decisions := []string{"Formation marketing pour Nova"}
	report := NewDayReport(2, nil, BusinessResults{}, decisions)
	if !reflect.DeepEqual(report.DecisionsImpact, decisions) {
		t.Fatalf("expected decisions preserved, got %v", report.DecisionsImpact)
	}
}
