package company

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownAction = errors.New("action inconnue")

var ErrAgentNotFound = errors.New("agent introuvable")

type AgentNotFoundError struct {
	AgentID string
}

func (e *AgentNotFoundError) Error() string {
	return fmt.Sprintf("agent %s introuvable", e.AgentID)
}

func (e *AgentNotFoundError) Unwrap() error { return ErrAgentNotFound }

// ResolveActions applies a batch of manager actions against the roster and
// returns the next roster, the human-readable decision notes and the one-time
// extra costs the batch incurred. The batch is atomic: the first invalid
// action aborts the whole resolution and the input roster stays untouched.
// Actions are applied in input order; several actions on the same agent each
// see the latest in-memory version.
func ResolveActions(roster []Agent, actions []ManagerAction) ([]Agent, []string, float64, error) {
	order := make([]string, 0, len(roster))
	byID := make(map[string]Agent, len(roster))
	for _, a := range roster {
		order = append(order, a.ID)
		byID[a.ID] = a
	}

	notes := make([]string, 0, len(actions))
	extraCosts := 0.0

	for _, action := range actions {
		agent, ok := byID[action.AgentID]
		if !ok {
			return nil, nil, 0, &AgentNotFoundError{AgentID: action.AgentID}
		}

		switch action.Kind {
		case ActionAssignTasks:
			agent.Motivation = clamp(agent.Motivation+AssignMotivationGain, 0, 100)
			agent.Stability = clamp(agent.Stability-AssignStabilityLoss, 0, 100)
			byID[agent.ID] = agent
			notes = append(notes, fmt.Sprintf("Tâches ajustées pour %s", agent.Name))

		case ActionTrain:
			focus := action.Focus
			if focus == "" {
				focus = DefaultTrainFocus
			}
			skills := agent.copySkills()
			if score, known := skills[focus]; known {
				skills[focus] = minInt(score+TrainSkillGain, MaxSkillScore)
			}
			agent.Skills = skills
			agent.Motivation = clamp(agent.Motivation+TrainMotivationGain, 0, 100)
			byID[agent.ID] = agent
			notes = append(notes, fmt.Sprintf("Formation %s pour %s", focus, agent.Name))
			extraCosts += TrainingCost

		case ActionPromote:
			agent.Motivation = clamp(agent.Motivation+PromoteMotivationGain, 0, 100)
			agent.Productivity = round2(agent.Productivity + PromoteProductivityGain)
			agent.Salary = int(float64(agent.Salary) * PromoteSalaryFactor)
			byID[agent.ID] = agent
			notes = append(notes, fmt.Sprintf("Promotion accordée à %s", agent.Name))

		case ActionFire:
			notes = append(notes, fmt.Sprintf("%s licencié(e)", agent.Name))
			extraCosts += float64(agent.Salary) * SeveranceRate
			delete(byID, agent.ID)

		case ActionSupport:
			agent.Stability = clamp(agent.Stability+SupportStabilityGain, 0, 100)
			agent.Motivation = clamp(agent.Motivation+SupportMotivationGain, 0, 100)
			byID[agent.ID] = agent
			notes = append(notes, fmt.Sprintf("Coaching/soutien pour %s", agent.Name))

		default:
			return nil, nil, 0, fmt.Errorf("%w: %q", ErrUnknownAction, action.Kind)
		}
	}

	next := make([]Agent, 0, len(byID))
	for _, id := range order {
		if agent, ok := byID[id]; ok {
			next = append(next, agent)
		}
	}
	return next, notes, extraCosts, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
