package company

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerate_ValidAgent(t *testing.T) {
	gen := newTestGenerator(42)

	for i := 0; i < 50; i++ {
		agent := gen.Generate()

		if agent.ID == "" || agent.Name == "" || agent.Role == "" {
			t.Fatalf("expected identity fields to be set, got %+v", agent)
		}
		if len(agent.Skills) != len(SkillNames) {
			t.Fatalf("expected %d skills, got %d", len(SkillNames), len(agent.Skills))
		}
		for _, name := range SkillNames {
			score, ok := agent.Skills[name]
			if !ok {
				t.Fatalf("missing skill %q", name)
			}
			if score < SkillScoreMin || score > SkillScoreMax {
				t.Fatalf("skill %q out of range: %d", name, score)
			}
		}
		if len(agent.Strengths) != 2 || len(agent.Weaknesses) != 1 {
			t.Fatalf("expected 2 strengths and 1 weakness, got %v / %v", agent.Strengths, agent.Weaknesses)
		}
		for _, s := range agent.Strengths {
			if s == agent.Weaknesses[0] {
				t.Fatalf("strengths and weaknesses overlap on %q", s)
			}
		}
		if agent.Productivity < ProductivityMin || agent.Productivity > ProductivityMax {
			t.Fatalf("productivity out of range: %v", agent.Productivity)
		}
		if agent.Salary < SalaryMin || agent.Salary > SalaryMax {
			t.Fatalf("salary out of range: %d", agent.Salary)
		}
		if len(agent.Traits) != 3 {
			t.Fatalf("expected 3 traits, got %v", agent.Traits)
		}
		seen := map[string]bool{}
		for _, trait := range agent.Traits {
			if seen[trait] {
				t.Fatalf("duplicate trait %q", trait)
			}
			seen[trait] = true
		}
		if agent.Motivation != DefaultMotivation || agent.Stability != DefaultStability {
			t.Fatalf("expected default motivation/stability, got %v/%v", agent.Motivation, agent.Stability)
		}
	}
}

func TestGenerate_DeterministicUnderSeed(t *testing.T) {
	a := newTestGenerator(7)
	b := newTestGenerator(7)
	a.newID = func() string { return "fixed" }
	b.newID = func() string { return "fixed" }

	for i := 0; i < 10; i++ {
		left := a.Generate()
		right := b.Generate()
		if !reflect.DeepEqual(left, right) {
			t.Fatalf("generation diverged at %d:\n%+v\n%+v", i, left, right)
		}
	}
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	gen := newTestGenerator(13)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				agent := gen.Generate()
				if len(agent.Strengths) != 2 || len(agent.Weaknesses) != 1 {
					t.Errorf("malformed agent under concurrent generation: %+v", agent)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewInitialState(t *testing.T) {
	gen := newTestGenerator(1)
	state := gen.NewInitialState("Nova Corp")

	if state.GameID == "" {
		t.Fatalf("expected game id")
	}
	if state.Day != 1 {
		t.Fatalf("expected day 1, got %d", state.Day)
	}
	if state.Company.Name != "Nova Corp" {
		t.Fatalf("unexpected company name %q", state.Company.Name)
	}
	if state.Company.Cash != InitialCash {
		t.Fatalf("expected initial cash %v, got %v", InitialCash, state.Company.Cash)
	}
	if len(state.Agents) != InitialRosterSize {
		t.Fatalf("expected %d agents, got %d", InitialRosterSize, len(state.Agents))
	}
	if state.LastReport != nil {
		t.Fatalf("expected no report on a fresh state")
	}
}
