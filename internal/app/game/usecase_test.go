package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"
)

type fakeRepo struct {
	states   map[string]company.GameState
	saved    []company.ManagerAction
	savedDay int
	creates  int
	saveErr  error
}

var _ ports.GameRepository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{states: map[string]company.GameState{}}
}

func (r *fakeRepo) Create(_ context.Context, state company.GameState) error {
	if _, ok := r.states[state.GameID]; ok {
		return ports.ErrConflict
	}
	r.states[state.GameID] = state
	r.creates++
	return nil
}

func (r *fakeRepo) Get(_ context.Context, gameID string) (company.GameState, error) {
	state, ok := r.states[gameID]
	if !ok {
		return company.GameState{}, ports.ErrNotFound
	}
	return state, nil
}

func (r *fakeRepo) Save(_ context.Context, state company.GameState, actions []company.ManagerAction, actionDay int) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if _, ok := r.states[state.GameID]; !ok {
		return ports.ErrNotFound
	}
	r.states[state.GameID] = state
	r.saved = actions
	r.savedDay = actionDay
	return nil
}

type fakeAdvisor struct {
	tips []string
	err  error
}

var _ ports.Advisor = fakeAdvisor{}

func (a fakeAdvisor) Recommend(context.Context, company.GameState, company.DayReport) ([]string, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.tips, nil
}

func (a fakeAdvisor) GeneratePersona(context.Context, company.Agent, string) (string, error) {
	return "persona", nil
}

func (a fakeAdvisor) InterviewReply(context.Context, company.Agent, []ports.InterviewMessage, string) (string, error) {
	return "reply", nil
}

type fakeMetrics struct {
	days, hires, advisorFailures, failures int
}

var _ ports.GameMetrics = (*fakeMetrics)(nil)

func (m *fakeMetrics) RecordDayResolved()    { m.days++ }
func (m *fakeMetrics) RecordHire()           { m.hires++ }
func (m *fakeMetrics) RecordAdvisorFailure() { m.advisorFailures++ }
func (m *fakeMetrics) RecordFailure()        { m.failures++ }

func newTestDeps(seed int64) (*company.Generator, *company.ResultsCalculator) {
	gen := company.NewGenerator(rand.New(rand.NewSource(seed)))
	calc := company.NewResultsCalculator(rand.New(rand.NewSource(seed + 1)))
	return gen, calc
}

func seedGame(t *testing.T, repo *fakeRepo, gen *company.Generator) company.GameState {
	t.Helper()
	state := gen.NewInitialState("Nova Corp")
	if err := repo.Create(context.Background(), state); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return state
}

func TestStart_CreatesGameOnDayOne(t *testing.T) {
	gen, calc := newTestDeps(1)
	repo := newFakeRepo()
	metrics := &fakeMetrics{}
	uc := StartUseCase{
		Repo:    repo,
		Advisor: fakeAdvisor{tips: []string{"t1", "t2"}},
		Metrics: metrics,
		Gen:     gen,
		Calc:    calc,
	}

	resp, err := uc.Execute(context.Background(), StartRequest{CompanyName: "Nova Corp"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	state := resp.State
	if state.Day != 1 {
		t.Fatalf("expected day 1, got %d", state.Day)
	}
	if len(state.Agents) != company.InitialRosterSize {
		t.Fatalf("expected %d agents, got %d", company.InitialRosterSize, len(state.Agents))
	}
	if state.LastReport == nil {
		t.Fatalf("expected a day-one report")
	}
	if state.LastReport.Day != 1 {
		t.Fatalf("expected report for day 1, got %d", state.LastReport.Day)
	}
	if got := state.LastReport.DecisionsImpact; len(got) != 1 || got[0] != company.NoteGameCreated {
		t.Fatalf("expected creation note, got %v", got)
	}
	if repo.creates != 1 {
		t.Fatalf("expected one create, got %d", repo.creates)
	}
	if metrics.days != 1 {
		t.Fatalf("expected one resolved day recorded, got %d", metrics.days)
	}
}

func TestStart_RejectsBlankName(t *testing.T) {
	gen, calc := newTestDeps(1)
	uc := StartUseCase{Repo: newFakeRepo(), Advisor: fakeAdvisor{tips: []string{"t"}}, Gen: gen, Calc: calc}

	_, err := uc.Execute(context.Background(), StartRequest{CompanyName: "   "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestStart_AdvisorFailureLeavesNothingPersisted(t *testing.T) {
	gen, calc := newTestDeps(1)
	repo := newFakeRepo()
	metrics := &fakeMetrics{}
	uc := StartUseCase{
		Repo:    repo,
		Advisor: fakeAdvisor{err: errors.New("api down")},
		Metrics: metrics,
		Gen:     gen,
		Calc:    calc,
	}

	_, err := uc.Execute(context.Background(), StartRequest{CompanyName: "Nova Corp"})
	if !errors.Is(err, ports.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no game persisted, got %d creates", repo.creates)
	}
	if metrics.advisorFailures != 1 || metrics.days != 0 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestAct_AdvancesExactlyOneDay(t *testing.T) {
	gen, calc := newTestDeps(2)
	repo := newFakeRepo()
	metrics := &fakeMetrics{}
	initial := seedGame(t, repo, gen)

	uc := ActUseCase{Repo: repo, Advisor: fakeAdvisor{tips: []string{"t"}}, Metrics: metrics, Calc: calc}
	target := initial.Agents[0].ID
	resp, err := uc.Execute(context.Background(), ActRequest{
		GameID:  initial.GameID,
		Actions: []company.ManagerAction{{AgentID: target, Kind: company.ActionTrain, Focus: "marketing"}},
	})
	if err != nil {
		t.Fatalf("act: %v", err)
	}

	if resp.State.Day != 2 {
		t.Fatalf("expected day 2, got %d", resp.State.Day)
	}
	if resp.Report.Day != 2 {
		t.Fatalf("expected report for day 2, got %d", resp.Report.Day)
	}
	wantNote := "Formation marketing pour " + initial.Agents[0].Name
	if got := resp.Report.DecisionsImpact; len(got) != 1 || got[0] != wantNote {
		t.Fatalf("expected %q, got %v", wantNote, got)
	}
	if repo.savedDay != 1 {
		t.Fatalf("expected action batch journaled for day 1, got %d", repo.savedDay)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one journaled action, got %d", len(repo.saved))
	}
	if stored := repo.states[initial.GameID]; stored.Day != 2 {
		t.Fatalf("expected stored day 2, got %d", stored.Day)
	}
	if metrics.days != 1 {
		t.Fatalf("expected one resolved day recorded, got %d", metrics.days)
	}
}

func TestAct_EmptyBatchStillResolvesDay(t *testing.T) {
	gen, calc := newTestDeps(3)
	repo := newFakeRepo()
	initial := seedGame(t, repo, gen)

	uc := ActUseCase{Repo: repo, Advisor: fakeAdvisor{tips: []string{"t"}}, Calc: calc}
	resp, err := uc.Execute(context.Background(), ActRequest{GameID: initial.GameID})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if got := resp.Report.DecisionsImpact; len(got) != 1 || got[0] != company.NoteNoDecision {
		t.Fatalf("expected placeholder decision, got %v", got)
	}
	if len(resp.State.Agents) != len(initial.Agents) {
		t.Fatalf("roster changed without actions")
	}
}

func TestAct_FireShrinksRoster(t *testing.T) {
	gen, calc := newTestDeps(4)
	repo := newFakeRepo()
	initial := seedGame(t, repo, gen)

	uc := ActUseCase{Repo: repo, Advisor: fakeAdvisor{tips: []string{"t"}}, Calc: calc}
	resp, err := uc.Execute(context.Background(), ActRequest{
		GameID:  initial.GameID,
		Actions: []company.ManagerAction{{AgentID: initial.Agents[1].ID, Kind: company.ActionFire}},
	})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if len(resp.State.Agents) != len(initial.Agents)-1 {
		t.Fatalf("expected roster to shrink by one, got %d", len(resp.State.Agents))
	}
	for _, agent := range resp.State.Agents {
		if agent.ID == initial.Agents[1].ID {
			t.Fatalf("fired agent still on roster")
		}
	}
}

func TestAct_UnknownGame(t *testing.T) {
	_, calc := newTestDeps(5)
	uc := ActUseCase{Repo: newFakeRepo(), Advisor: fakeAdvisor{tips: []string{"t"}}, Calc: calc}

	_, err := uc.Execute(context.Background(), ActRequest{GameID: "ghost"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAct_UnknownAgentLeavesStateUntouched(t *testing.T) {
	gen, calc := newTestDeps(6)
	repo := newFakeRepo()
	initial := seedGame(t, repo, gen)

	uc := ActUseCase{Repo: repo, Advisor: fakeAdvisor{tips: []string{"t"}}, Calc: calc}
	_, err := uc.Execute(context.Background(), ActRequest{
		GameID:  initial.GameID,
		Actions: []company.ManagerAction{{AgentID: "ghost", Kind: company.ActionSupport}},
	})
	if !errors.Is(err, company.ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
	if stored := repo.states[initial.GameID]; stored.Day != initial.Day {
		t.Fatalf("stored state advanced on a failed batch")
	}
}

func TestAct_SaveFailurePropagates(t *testing.T) {
	gen, calc := newTestDeps(7)
	repo := newFakeRepo()
	metrics := &fakeMetrics{}
	initial := seedGame(t, repo, gen)
	saveErr := errors.New("db gone")
	repo.saveErr = saveErr

	uc := ActUseCase{Repo: repo, Advisor: fakeAdvisor{tips: []string{"t"}}, Metrics: metrics, Calc: calc}
	_, err := uc.Execute(context.Background(), ActRequest{GameID: initial.GameID})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if metrics.failures != 1 || metrics.days != 0 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestAct_RecommendationsCappedAtFour(t *testing.T) {
	gen, calc := newTestDeps(8)
	repo := newFakeRepo()
	initial := seedGame(t, repo, gen)

	uc := ActUseCase{
		Repo:    repo,
		Advisor: fakeAdvisor{tips: []string{"a", "b", "c", "d", "e", "f"}},
		Calc:    calc,
	}
	resp, err := uc.Execute(context.Background(), ActRequest{GameID: initial.GameID})
	if err != nil {
		t.Fatalf("act: %v", err)
	}
	if len(resp.Report.Recommendations) != maxRecommendations {
		t.Fatalf("expected %d recommendations, got %d", maxRecommendations, len(resp.Report.Recommendations))
	}
}

func TestState_ReturnsStoredState(t *testing.T) {
	gen, _ := newTestDeps(9)
	repo := newFakeRepo()
	initial := seedGame(t, repo, gen)

	uc := StateUseCase{Repo: repo}
	resp, err := uc.Execute(context.Background(), StateRequest{GameID: initial.GameID})
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if resp.State.GameID != initial.GameID || resp.State.Day != initial.Day {
		t.Fatalf("unexpected state %+v", resp.State)
	}

	if _, err := uc.Execute(context.Background(), StateRequest{GameID: ""}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank id, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), StateRequest{GameID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
