package ports

type GameMetrics interface {
	RecordDayResolved()
	RecordHire()
	RecordAdvisorFailure()
	RecordFailure()
}
