package company

const (
	InitialCash       = 120_000.0
	InitialRosterSize = 3

	DefaultMotivation = 65.0
	DefaultStability  = 70.0

	MaxSkillScore = 100

	// Skill generation policy v1: each competency drawn independently
	// in [SkillScoreMin, SkillScoreMax].
	SkillScoreMin = 40
	SkillScoreMax = 90

	SalaryMin = 55_000
	SalaryMax = 110_000

	ProductivityMin = 0.6
	ProductivityMax = 1.1

	AssignMotivationGain = 5
	AssignStabilityLoss  = 2

	TrainSkillGain      = 5
	TrainMotivationGain = 6
	TrainingCost        = 800.0
	DefaultTrainFocus   = "production"

	PromoteMotivationGain   = 10
	PromoteProductivityGain = 0.05
	PromoteSalaryFactor     = 1.10

	SeveranceRate = 0.25

	SupportStabilityGain  = 12
	SupportMotivationGain = 4

	RevenuePerOutput   = 1200.0
	WorkingDaysPerYear = 260.0
	MaintenanceBase    = 400.0
	MaintenancePerHead = 60.0
	RevenuePerClient   = 4500.0

	VarianceMin = 0.95
	VarianceMax = 1.10

	InnovationRatePerHead = 0.2
	InnovationStdDev      = 0.6
	ErrorRatePerHead      = 0.1
	ErrorStdDev           = 0.4
)

const (
	NoteGameCreated = "Entreprise créée"
	NoteNoDecision  = "Pas de décision prise"
	NoteAutonomous  = "Autonome"
)

// SkillNames is the fixed competency set; every Agent.Skills map carries
// exactly these keys.
var SkillNames = []string{"production", "marketing", "finance", "support"}

var traitPool = []string{"stable", "imprevisible", "logique", "collaboratif", "innovant", "rigoureux"}

var rolePool = []string{"Ops", "Marketing", "Finance", "Support", "R&D"}

var autonomyLevels = []Autonomy{AutonomyLow, AutonomyMedium, AutonomyHigh}

var firstNames = []string{"Nova", "Atlas", "Vega", "Orion", "Lumen", "Echo"}

var lastNames = []string{"Core", "Pulse", "Stack", "Logic", "Prime", "Grid"}
