package company

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator procedurally creates agents. It owns its randomness source so
// rosters and recruitment pools are reproducible under a fixed seed. Safe
// for concurrent use: draws are serialized because one generator is shared
// by every request handler.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	newID func() string
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, newID: uuid.NewString}
}

// Generate produces one syntactically valid agent: two distinct strengths,
// one weakness from the remaining skills, and default motivation/stability.
func (g *Generator) Generate() Agent {
	g.mu.Lock()
	defer g.mu.Unlock()

	strengths := g.pick(SkillNames, 2)
	weaknesses := make([]string, 0, 1)
	for _, s := range SkillNames {
		if s != strengths[0] && s != strengths[1] {
			weaknesses = append(weaknesses, s)
			break
		}
	}

	skills := make(map[string]int, len(SkillNames))
	for _, s := range SkillNames {
		skills[s] = SkillScoreMin + g.rng.Intn(SkillScoreMax-SkillScoreMin+1)
	}

	return Agent{
		ID:           g.newID(),
		Name:         firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))],
		Role:         rolePool[g.rng.Intn(len(rolePool))],
		Skills:       skills,
		Strengths:    strengths,
		Weaknesses:   weaknesses,
		Productivity: round2(ProductivityMin + g.rng.Float64()*(ProductivityMax-ProductivityMin)),
		Salary:       SalaryMin + g.rng.Intn(SalaryMax-SalaryMin+1),
		Autonomy:     autonomyLevels[g.rng.Intn(len(autonomyLevels))],
		Traits:       g.pick(traitPool, 3),
		Motivation:   DefaultMotivation,
		Stability:    DefaultStability,
	}
}

func (g *Generator) GenerateBatch(n int) []Agent {
	out := make([]Agent, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}
	return out
}

// NewInitialState builds a fresh day-1 game with a generated roster.
func (g *Generator) NewInitialState(companyName string) GameState {
	return GameState{
		GameID:  g.newID(),
		Day:     1,
		Company: Company{Name: companyName, Cash: InitialCash},
		Agents:  g.GenerateBatch(InitialRosterSize),
	}
}

func (g *Generator) pick(pool []string, k int) []string {
	idx := g.rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
