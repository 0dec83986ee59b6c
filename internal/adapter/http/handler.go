package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"simcorp/internal/app/game"
	"simcorp/internal/app/ports"
	"simcorp/internal/app/recruit"
	"simcorp/internal/domain/company"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	StartUC      game.StartUseCase
	ActUC        game.ActUseCase
	StateUC      game.StateUseCase
	CandidatesUC recruit.CandidatesUseCase
	InterviewUC  recruit.InterviewUseCase
	HireUC       recruit.HireUseCase
	KPI          kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	s.GET("/health", h.health)

	g := s.Group("/game")
	g.POST("/start", h.start)
	g.POST("/action", h.action)
	g.GET("/state/:game_id", h.state)

	r := s.Group("/recruitment")
	r.POST("/candidates", h.candidates)
	r.POST("/interview", h.interview)
	r.POST("/hire", h.hire)

	s.GET("/ops/kpi", h.kpi)
}

type startRequest struct {
	CompanyName string `json:"company_name"`
}

type actionPayload struct {
	AgentID string `json:"agent_id"`
	Action  string `json:"action"`
	Focus   string `json:"focus,omitempty"`
}

type actionRequest struct {
	GameID  string          `json:"game_id"`
	Actions []actionPayload `json:"actions"`
}

type candidatesRequest struct {
	GameID string `json:"game_id"`
	Count  int    `json:"count"`
}

type interviewRequest struct {
	GameID      string                   `json:"game_id"`
	CandidateID string                   `json:"candidate_id"`
	Messages    []ports.InterviewMessage `json:"messages"`
}

type hireRequest struct {
	GameID      string `json:"game_id"`
	CandidateID string `json:"candidate_id"`
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) start(c context.Context, ctx *app.RequestContext) {
	var body startRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StartUC.Execute(c, game.StartRequest{CompanyName: body.CompanyName})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, map[string]any{"state": resp.State})
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	actions := make([]company.ManagerAction, 0, len(body.Actions))
	for _, a := range body.Actions {
		actions = append(actions, company.ManagerAction{
			AgentID: a.AgentID,
			Kind:    company.ActionKind(a.Action),
			Focus:   a.Focus,
		})
	}

	resp, err := h.ActUC.Execute(c, game.ActRequest{GameID: body.GameID, Actions: actions})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"state": resp.State, "report": resp.Report})
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	gameID := ctx.Param("game_id")

	resp, err := h.StateUC.Execute(c, game.StateRequest{GameID: gameID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"state": resp.State})
}

func (h Handler) candidates(c context.Context, ctx *app.RequestContext) {
	var body candidatesRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CandidatesUC.Execute(c, recruit.CandidatesRequest{GameID: body.GameID, Count: body.Count})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"candidates": resp.Candidates})
}

func (h Handler) interview(c context.Context, ctx *app.RequestContext) {
	var body interviewRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.InterviewUC.Execute(c, recruit.InterviewRequest{
		GameID:      body.GameID,
		CandidateID: body.CandidateID,
		Messages:    body.Messages,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"reply": resp.Reply})
}

func (h Handler) hire(c context.Context, ctx *app.RequestContext) {
	var body hireRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.HireUC.Execute(c, recruit.HireRequest{GameID: body.GameID, CandidateID: body.CandidateID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"state": resp.State})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidRequest), errors.Is(err, recruit.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, company.ErrUnknownAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action", err.Error())
	case errors.Is(err, company.ErrAgentNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "agent_not_found", err.Error())
	case errors.Is(err, ports.ErrPersonaMissing):
		writeErrorBody(ctx, consts.StatusConflict, "persona_missing", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ports.ErrUpstream):
		writeErrorBody(ctx, consts.StatusBadGateway, "upstream_error", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
