package recruit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"simcorp/internal/app/ports"
)

// InterviewUseCase plays one candidate turn of an interview. State and day
// counter are unaffected.
type InterviewUseCase struct {
	Repo    ports.GameRepository
	Pool    ports.CandidatePool
	Advisor ports.Advisor
}

type InterviewRequest struct {
	GameID      string
	CandidateID string
	Messages    []ports.InterviewMessage
}

type InterviewResponse struct {
	Reply string
}

func (u InterviewUseCase) Execute(ctx context.Context, req InterviewRequest) (InterviewResponse, error) {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.CandidateID) == "" {
		return InterviewResponse{}, ErrInvalidRequest
	}

	state, err := u.Repo.Get(ctx, req.GameID)
	if err != nil {
		return InterviewResponse{}, err
	}
	candidate, err := u.Pool.Find(ctx, req.GameID, req.CandidateID)
	if err != nil {
		return InterviewResponse{}, err
	}

	reply, err := u.Advisor.InterviewReply(ctx, candidate, req.Messages, state.Company.Name)
	if err != nil {
		if errors.Is(err, ports.ErrPersonaMissing) {
			return InterviewResponse{}, err
		}
		return InterviewResponse{}, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
	}
	return InterviewResponse{Reply: reply}, nil
}
