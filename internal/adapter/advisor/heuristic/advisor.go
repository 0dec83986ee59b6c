// Package heuristic is the deterministic recommendation provider: a fixed
// sequence of business-condition checks over the day's numbers, no network.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

const maxTips = 4

var genericTips = []string{
	"Continue sur cette lancée et sécurise un client pilote supplémentaire.",
	"Garde un point quotidien court pour suivre la motivation de l'équipe.",
	"Documente les décisions du jour pour garder une trace des arbitrages.",
	"Vérifie que chaque agent a un objectif clair pour demain.",
}

type Advisor struct{}

func (Advisor) Recommend(_ context.Context, state company.GameState, report company.DayReport) ([]string, error) {
	tips := make([]string, 0, maxTips)

	if report.Results.Net < 0 {
		tips = appendUnique(tips, "Réduis les coûts de support et priorise les agents les plus productifs.")
	}
	if state.Company.Cash < 2*state.Company.Costs {
		tips = appendUnique(tips, "La trésorerie couvre moins de deux jours de coûts : sécurise du cash avant d'investir.")
	}

	if len(state.Agents) > 0 {
		var motivation, stability float64
		for _, agent := range state.Agents {
			motivation += agent.Motivation
			stability += agent.Stability
		}
		motivation /= float64(len(state.Agents))
		stability /= float64(len(state.Agents))

		if motivation < 60 {
			tips = appendUnique(tips, "La motivation moyenne est basse : planifie du coaching et des tâches mieux réparties.")
		}
		if stability < 60 || report.Results.Errors > len(state.Agents)/2 {
			tips = appendUnique(tips, "Trop d'incidents : renforce les processus qualité avant de pousser la cadence.")
		}
	}

	if len(state.Agents) >= 3 && report.Results.Innovations == 0 {
		tips = appendUnique(tips, "Planifie une demi-journée d'innovation encadrée avec les profils R&D.")
	}
	minClients := 3
	if len(state.Agents) > minClients {
		minClients = len(state.Agents)
	}
	if report.Results.Clients < minClients {
		tips = appendUnique(tips, "Le volume de clients est trop faible : lance une action de prospection ciblée.")
	}

	for _, tip := range genericTips {
		if len(tips) >= maxTips {
			break
		}
		tips = appendUnique(tips, tip)
	}
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips, nil
}

func (Advisor) GeneratePersona(_ context.Context, agent company.Agent, companyName string) (string, error) {
	return fmt.Sprintf(
		"%s, candidat(e) %s chez %s. Points forts : %s. Point faible : %s. Traits : %s.",
		agent.Name,
		agent.Role,
		companyName,
		strings.Join(agent.Strengths, ", "),
		strings.Join(agent.Weaknesses, ", "),
		strings.Join(agent.Traits, ", "),
	), nil
}

func (Advisor) InterviewReply(_ context.Context, candidate company.Agent, transcript []ports.InterviewMessage, _ string) (string, error) {
	if strings.TrimSpace(candidate.Persona) == "" {
		return "", ports.ErrPersonaMissing
	}

	lastQuestion := ""
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Sender == "manager" {
			lastQuestion = strings.TrimSpace(transcript[i].Content)
			break
		}
	}
	if lastQuestion == "" {
		return fmt.Sprintf("Bonjour, je suis %s. %s", candidate.Name, candidate.Persona), nil
	}
	return fmt.Sprintf(
		"Sur « %s » : je m'appuierais d'abord sur %s, en restant %s.",
		lastQuestion,
		strings.Join(candidate.Strengths, " et "),
		strings.Join(candidate.Traits, ", "),
	), nil
}

func appendUnique(tips []string, tip string) []string {
	for _, existing := range tips {
		if existing == tip {
			return tips
		}
	}
	return append(tips, tip)
}
