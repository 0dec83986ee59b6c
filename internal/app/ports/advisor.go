package ports

import (
	"context"
	"errors"

	"simcorp/internal/domain/company"
)

// ErrPersonaMissing indicates an interview turn was requested for a
// candidate whose persona was never generated.
var ErrPersonaMissing = errors.New("persona missing")

type InterviewMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

// Advisor is the recommendation provider: it phrases tactical advice for a
// resolved day, seeds interview personas at candidate-creation time and
// plays one candidate turn of an interview.
type Advisor interface {
	Recommend(ctx context.Context, state company.GameState, report company.DayReport) ([]string, error)
	GeneratePersona(ctx context.Context, agent company.Agent, companyName string) (string, error)
	InterviewReply(ctx context.Context, candidate company.Agent, transcript []InterviewMessage, companyName string) (string, error)
}
