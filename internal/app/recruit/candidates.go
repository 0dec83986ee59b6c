package recruit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

var ErrInvalidRequest = errors.New("invalid recruitment request")

const (
	DefaultCandidateCount = 3
	MaxCandidateCount     = 6
)

// CandidatesUseCase generates a transient recruitment pool for manager
// review. The pool is stashed per game id so interview and hire can refer
// to candidates by id; the roster and the day counter are untouched.
type CandidatesUseCase struct {
	Repo    ports.GameRepository
	Pool    ports.CandidatePool
	Advisor ports.Advisor
	Gen     *company.Generator
}

type CandidatesRequest struct {
	GameID string
	Count  int
}

type CandidatesResponse struct {
	Candidates []company.Agent
}

func (u CandidatesUseCase) Execute(ctx context.Context, req CandidatesRequest) (CandidatesResponse, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return CandidatesResponse{}, ErrInvalidRequest
	}
	count := req.Count
	if count == 0 {
		count = DefaultCandidateCount
	}
	if count < 1 || count > MaxCandidateCount {
		return CandidatesResponse{}, ErrInvalidRequest
	}

	state, err := u.Repo.Get(ctx, req.GameID)
	if err != nil {
		return CandidatesResponse{}, err
	}

	candidates := u.Gen.GenerateBatch(count)
	for i := range candidates {
		persona, err := u.Advisor.GeneratePersona(ctx, candidates[i], state.Company.Name)
		if err != nil {
			return CandidatesResponse{}, fmt.Errorf("%w: %v", ports.ErrUpstream, err)
		}
		candidates[i].Persona = persona
	}

	if err := u.Pool.Put(ctx, req.GameID, candidates); err != nil {
		return CandidatesResponse{}, err
	}
	return CandidatesResponse{Candidates: candidates}, nil
}
