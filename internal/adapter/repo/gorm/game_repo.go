package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"simcorp/internal/app/ports"
	"simcorp/internal/domain/company"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepo persists one game per company row; the latest game_states row
// (by day, then insertion order) is the authoritative state.
type GameRepo struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db}
}

func (r GameRepo) Create(ctx context.Context, state company.GameState) error {
	db := getDBFromCtx(ctx, r.db)

	row := companyRow{
		GameID:  state.GameID,
		Name:    state.Company.Name,
		Cash:    state.Company.Cash,
		Revenue: state.Company.Revenue,
		Costs:   state.Company.Costs,
	}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	if err := r.upsertAgents(db, state.GameID, state.Agents); err != nil {
		return err
	}
	return r.insertState(db, state)
}

func (r GameRepo) Get(ctx context.Context, gameID string) (company.GameState, error) {
	db := getDBFromCtx(ctx, r.db)

	var stateRow gameStateRow
	err := db.Where("game_id = ?", gameID).Order("day DESC, id DESC").First(&stateRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return company.GameState{}, ports.ErrNotFound
		}
		return company.GameState{}, err
	}

	var compRow companyRow
	if err := db.Where("game_id = ?", gameID).First(&compRow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return company.GameState{}, ports.ErrNotFound
		}
		return company.GameState{}, err
	}

	var agentRows []agentRow
	if err := db.Where("game_id = ?", gameID).Order("position").Find(&agentRows).Error; err != nil {
		return company.GameState{}, err
	}

	agents := make([]company.Agent, 0, len(agentRows))
	for _, row := range agentRows {
		agent, err := fromAgentRow(row)
		if err != nil {
			return company.GameState{}, err
		}
		agents = append(agents, agent)
	}

	state := company.GameState{
		GameID: gameID,
		Day:    stateRow.Day,
		Company: company.Company{
			Name:    compRow.Name,
			Cash:    compRow.Cash,
			Revenue: compRow.Revenue,
			Costs:   compRow.Costs,
		},
		Agents: agents,
	}
	if len(stateRow.Report) > 0 {
		var report company.DayReport
		if err := json.Unmarshal(stateRow.Report, &report); err != nil {
			return company.GameState{}, fmt.Errorf("decode report: %w", err)
		}
		state.LastReport = &report
	}
	return state, nil
}

func (r GameRepo) Save(ctx context.Context, state company.GameState, actions []company.ManagerAction, actionDay int) error {
	db := getDBFromCtx(ctx, r.db)

	updates := map[string]any{
		"cash":    state.Company.Cash,
		"revenue": state.Company.Revenue,
		"costs":   state.Company.Costs,
	}
	res := db.Model(&companyRow{}).Where("game_id = ?", state.GameID).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update company: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}

	if err := r.syncAgents(db, state.GameID, state.Agents); err != nil {
		return err
	}
	if err := r.insertState(db, state); err != nil {
		return err
	}
	return r.insertActions(db, state.GameID, actionDay, actions)
}

func (r GameRepo) upsertAgents(db *gorm.DB, gameID string, agents []company.Agent) error {
	if len(agents) == 0 {
		return nil
	}
	rows := make([]agentRow, 0, len(agents))
	for i, agent := range agents {
		row := toAgentRow(gameID, agent)
		row.Position = i
		rows = append(rows, row)
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("save agents: %w", err)
	}
	return nil
}

// syncAgents makes the stored roster match the in-memory one: fired agents
// are deleted, everyone else is upserted whole.
func (r GameRepo) syncAgents(db *gorm.DB, gameID string, agents []company.Agent) error {
	keep := make([]string, 0, len(agents))
	for _, agent := range agents {
		keep = append(keep, agent.ID)
	}

	query := db.Where("game_id = ?", gameID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	if err := query.Delete(&agentRow{}).Error; err != nil {
		return fmt.Errorf("delete removed agents: %w", err)
	}
	return r.upsertAgents(db, gameID, agents)
}

func (r GameRepo) insertState(db *gorm.DB, state company.GameState) error {
	row := gameStateRow{
		GameID: state.GameID,
		Day:    state.Day,
	}
	if state.LastReport != nil {
		b, err := json.Marshal(state.LastReport)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		row.Report = b
	}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("insert game state: %w", err)
	}
	return nil
}

func (r GameRepo) insertActions(db *gorm.DB, gameID string, actionDay int, actions []company.ManagerAction) error {
	if len(actions) == 0 {
		return nil
	}
	rows := make([]managerActionRow, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, managerActionRow{
			GameID:  gameID,
			Day:     actionDay,
			AgentID: action.AgentID,
			Action:  string(action.Kind),
			Focus:   action.Focus,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("journal manager actions: %w", err)
	}
	return nil
}

func toAgentRow(gameID string, agent company.Agent) agentRow {
	skills, _ := json.Marshal(agent.Skills)
	strengths, _ := json.Marshal(agent.Strengths)
	weaknesses, _ := json.Marshal(agent.Weaknesses)
	traits, _ := json.Marshal(agent.Traits)
	return agentRow{
		ID:           agent.ID,
		GameID:       gameID,
		Name:         agent.Name,
		Role:         agent.Role,
		Skills:       skills,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Traits:       traits,
		Productivity: agent.Productivity,
		Salary:       agent.Salary,
		Autonomy:     string(agent.Autonomy),
		Motivation:   agent.Motivation,
		Stability:    agent.Stability,
		Persona:      agent.Persona,
	}
}

func fromAgentRow(row agentRow) (company.Agent, error) {
	agent := company.Agent{
		ID:           row.ID,
		Name:         row.Name,
		Role:         row.Role,
		Productivity: row.Productivity,
		Salary:       row.Salary,
		Autonomy:     company.Autonomy(row.Autonomy),
		Motivation:   row.Motivation,
		Stability:    row.Stability,
		Persona:      row.Persona,
	}
	if len(row.Skills) > 0 {
		if err := json.Unmarshal(row.Skills, &agent.Skills); err != nil {
			return company.Agent{}, fmt.Errorf("decode agent skills: %w", err)
		}
	}
	if len(row.Strengths) > 0 {
		if err := json.Unmarshal(row.Strengths, &agent.Strengths); err != nil {
			return company.Agent{}, fmt.Errorf("decode agent strengths: %w", err)
		}
	}
	if len(row.Weaknesses) > 0 {
		if err := json.Unmarshal(row.Weaknesses, &agent.Weaknesses); err != nil {
			return company.Agent{}, fmt.Errorf("decode agent weaknesses: %w", err)
		}
	}
	if len(row.Traits) > 0 {
		if err := json.Unmarshal(row.Traits, &agent.Traits); err != nil {
			return company.Agent{}, fmt.Errorf("decode agent traits: %w", err)
		}
	}
	return agent, nil
}
