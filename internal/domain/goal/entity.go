package goal

type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusOnTrack    Status = "ON_TRACK"
	StatusAtRisk     Status = "AT_RISK"
	StatusOffTrack   Status = "OFF_TRACK"
	StatusAchieved   Status = "ACHIEVED"
)

// StatusRecord is the slice of a goal the analytics layer reads.
type StatusRecord struct {
	EmployeeID string
	Status     Status
}

// StatusCount is the number of goals in one status.
type StatusCount struct {
	Status Status
	Count  int64
}

// AchievementRatio returns achieved/total, or 1 when there are no goals.
func AchievementRatio(goals []StatusRecord) float64 {
	if len(goals) == 0 {
		return 1
	}
	var achieved int
	for _, g := range goals {
		if g.Status == StatusAchieved {
			achieved++
		}
	}
	return float64(achieved) / float64(len(goals))
}
