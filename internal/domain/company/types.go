package company

type Autonomy string

const (
	AutonomyLow    Autonomy = "low"
	AutonomyMedium Autonomy = "medium"
	AutonomyHigh   Autonomy = "high"
)

// Agent is an employee record. Updates go through whole-record replacement:
// the action resolver never mutates an Agent it was handed, it builds a new
// value (with copied maps and slices) and swaps it into the roster.
type Agent struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Role         string         `json:"role"`
	Skills       map[string]int `json:"skills"`
	Strengths    []string       `json:"strengths"`
	Weaknesses   []string       `json:"weaknesses"`
	Productivity float64        `json:"productivity"`
	Salary       int            `json:"salary"`
	Autonomy     Autonomy       `json:"autonomy"`
	Traits       []string       `json:"traits"`
	Motivation   float64        `json:"motivation"`
	Stability    float64        `json:"stability"`
	// Persona is generated once at candidate-creation time and drives
	// interview replies for the lifetime of the record.
	Persona string `json:"persona,omitempty"`
}

func (a Agent) copySkills() map[string]int {
	out := make(map[string]int, len(a.Skills))
	for k, v := range a.Skills {
		out[k] = v
	}
	return out
}

type Company struct {
	Name    string  `json:"name"`
	Cash    float64 `json:"cash"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

type BusinessResults struct {
	Revenue     float64 `json:"revenue"`
	Costs       float64 `json:"costs"`
	Net         float64 `json:"net"`
	Clients     int     `json:"clients"`
	Errors      int     `json:"errors"`
	Innovations int     `json:"innovations"`
}

type AgentInsight struct {
	AgentID      string  `json:"agent_id"`
	Name         string  `json:"name"`
	Motivation   float64 `json:"motivation"`
	Stability    float64 `json:"stability"`
	Productivity float64 `json:"productivity"`
	Note         string  `json:"note,omitempty"`
}

type DayReport struct {
	Day             int             `json:"day"`
	AgentSituation  []AgentInsight  `json:"agent_situation"`
	Results         BusinessResults `json:"results"`
	DecisionsImpact []string        `json:"decisions_impact"`
	Recommendations []string        `json:"recommendations"`
}

// GameState is the aggregate root for one game session. The repository is
// the sole authority for its durable form; a new state value is produced
// per resolved day and the previous one is never edited in place.
type GameState struct {
	GameID     string     `json:"game_id"`
	Day        int        `json:"day"`
	Company    Company    `json:"company"`
	Agents     []Agent    `json:"agents"`
	LastReport *DayReport `json:"last_report,omitempty"`
}

type ActionKind string

const (
	ActionAssignTasks ActionKind = "assign_tasks"
	ActionTrain       ActionKind = "train"
	ActionPromote     ActionKind = "promote"
	ActionFire        ActionKind = "fire"
	ActionSupport     ActionKind = "support"
)

// ManagerAction is one manager command targeting a single agent.
// Focus is only meaningful for train.
type ManagerAction struct {
	AgentID string     `json:"agent_id"`
	Kind    ActionKind `json:"action"`
	Focus   string     `json:"focus,omitempty"`
}
