package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

const maxTips = 4

type Advisor struct {
	Client *Client
}

const recommendSystemPrompt = "Tu es un conseiller en gestion pour une petite entreprise simulée. " +
	"Réponds uniquement par une liste de 1 à 4 recommandations courtes et actionnables, une par ligne, sans numérotation."

func (a Advisor) Recommend(ctx context.Context, state company.GameState, report company.DayReport) ([]string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Entreprise %s, jour %d.\n", state.Company.Name, report.Day)
	fmt.Fprintf(&b, "Résultats : revenu %.2f, coûts %.2f, net %.2f, trésorerie %.2f.\n",
		report.Results.Revenue, report.Results.Costs, report.Results.Net, state.Company.Cash)
	fmt.Fprintf(&b, "Clients %d, erreurs %d, innovations %d.\n",
		report.Results.Clients, report.Results.Errors, report.Results.Innovations)
	fmt.Fprintf(&b, "Équipe (%d agents) :\n", len(state.Agents))
	for _, agent := range state.Agents {
		fmt.Fprintf(&b, "- %s (%s) motivation %.0f, stabilité %.0f, productivité %.2f\n",
			agent.Name, agent.Role, agent.Motivation, agent.Stability, agent.Productivity)
	}
	fmt.Fprintf(&b, "Décisions du jour : %s.\n", strings.Join(report.DecisionsImpact, " ; "))
	b.WriteString("Donne tes recommandations pour demain.")

	reply, err := a.Client.Complete(ctx, []Message{
		{Role: "system", Content: recommendSystemPrompt},
		{Role: "user", Content: b.String()},
	}, 400)
	if err != nil {
		return nil, err
	}

	tips := parseTips(reply)
	if len(tips) == 0 {
		return nil, fmt.Errorf("no usable recommendations in reply")
	}
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	slog.Debug("llm recommendations", "day", report.Day, "count", len(tips))
	return tips, nil
}

func (a Advisor) GeneratePersona(ctx context.Context, agent company.Agent, companyName string) (string, error) {
	prompt := fmt.Sprintf(
		"Rédige en 3 phrases la personnalité d'un(e) candidat(e) nommé(e) %s pour un poste %s chez %s. "+
			"Points forts : %s. Point faible : %s. Traits : %s. "+
			"Écris à la première personne, ton naturel, sans liste.",
		agent.Name, agent.Role, companyName,
		strings.Join(agent.Strengths, ", "),
		strings.Join(agent.Weaknesses, ", "),
		strings.Join(agent.Traits, ", "),
	)
	return a.Client.Complete(ctx, []Message{{Role: "user", Content: prompt}}, 300)
}

// InterviewReply replays the stored persona as the system prompt and maps
// the transcript onto chat roles, so a fixed persona gives reproducible
// interview behavior.
func (a Advisor) InterviewReply(ctx context.Context, candidate company.Agent, transcript []ports.InterviewMessage, companyName string) (string, error) {
	if strings.TrimSpace(candidate.Persona) == "" {
		return "", ports.ErrPersonaMissing
	}

	system := fmt.Sprintf(
		"Tu es %s, candidat(e) en entretien d'embauche chez %s. Ta personnalité : %s "+
			"Réponds en une ou deux phrases, reste dans le rôle.",
		candidate.Name, companyName, candidate.Persona,
	)
	messages := make([]Message, 0, len(transcript)+1)
	messages = append(messages, Message{Role: "system", Content: system})
	for _, m := range transcript {
		role := "user"
		if m.Sender == "candidate" {
			role = "assistant"
		}
		messages = append(messages, Message{Role: role, Content: m.Content})
	}

	return a.Client.Complete(ctx, messages, 200)
}

func parseTips(reply string) []string {
	lines := strings.Split(reply, "\n")
	tips := make([]string, 0, len(lines))
	for _, line := range lines {
		tip := strings.TrimSpace(line)
		tip = strings.TrimLeft(tip, "-*•0123456789. ")
		if tip == "" {
			continue
		}
		tips = append(tips, tip)
	}
	return tips
}
