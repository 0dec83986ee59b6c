package inmemory

import "sync"

type Snapshot struct {
	DaysResolved      uint64 `json:"days_resolved"`
	Hires             uint64 `json:"hires"`
	AdvisorFailures   uint64 `json:"advisor_failures"`
	CommandFailures   uint64 `json:"command_failures"`
	CommandsTotal     uint64 `json:"commands_total"`
	CommandsSucceeded uint64 `json:"commands_succeeded"`
}

type Recorder struct {
	mu              sync.Mutex
	daysResolved    uint64
	hires           uint64
	advisorFailures uint64
	failures        uint64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordDayResolved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.daysResolved++
}

func (r *Recorder) RecordHire() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hires++
}

func (r *Recorder) RecordAdvisorFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advisorFailures++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	succeeded := r.daysResolved + r.hires
	return Snapshot{
		DaysResolved:      r.daysResolved,
		Hires:             r.hires,
		AdvisorFailures:   r.advisorFailures,
		CommandFailures:   r.advisorFailures + r.failures,
		CommandsTotal:     succeeded + r.advisorFailures + r.failures,
		CommandsSucceeded: succeeded,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
