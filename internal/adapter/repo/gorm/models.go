package gormrepo

import "time"

// Row types mirror the SQL schema in migrations/. Skills, strength and
// trait lists and the day report are stored as JSONB.

type companyRow struct {
	GameID  string `gorm:"column:game_id;primaryKey"`
	Name    string
	Cash    float64
	Revenue float64
	Costs   float64
}

func (companyRow) TableName() string { return "companies" }

type agentRow struct {
	ID           string `gorm:"primaryKey"`
	GameID       string
	Position     int
	Name         string
	Role         string
	Skills       []byte `gorm:"type:jsonb"`
	Strengths    []byte `gorm:"type:jsonb"`
	Weaknesses   []byte `gorm:"type:jsonb"`
	Traits       []byte `gorm:"type:jsonb"`
	Productivity float64
	Salary       int
	Autonomy     string
	Motivation   float64
	Stability    float64
	Persona      string
}

func (agentRow) TableName() string { return "agents" }

type gameStateRow struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	GameID    string
	Day       int
	Report    []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (gameStateRow) TableName() string { return "game_states" }

type managerActionRow struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	GameID    string
	Day       int
	AgentID   string
	Action    string
	Focus     string
	CreatedAt time.Time
}

func (managerActionRow) TableName() string { return "manager_actions" }
