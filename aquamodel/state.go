package aquamodel

import "github.com/jrsteele09/go-aqua-client/internal/utils"

const (
	DefaultGoal = 2000
)

// State is the daily app-state record exchanged with /api/data.
// Streak and BestStreak are computed by the backend.
type State struct {
	Consumed   int `json:"consumed"`
	Goal       int `json:"goal"`
	Streak     int `json:"streak"`
	BestStreak int `json:"best_streak"`
}

// DefaultState is the state a dashboard shows before the first load.
func DefaultState() State {
	return State{Goal: DefaultGoal}
}

// StatePatch is the decoded form of a GET /api/data body. Fields absent from
// the body stay nil so that merging keeps the current value.
type StatePatch struct {
	Consumed   *int `json:"consumed"`
	Goal       *int `json:"goal"`
	Streak     *int `json:"streak"`
	BestStreak *int `json:"best_streak"`
}

// Merge returns s with every field present in p applied.
func (s State) Merge(p StatePatch) State {
	return State{
		Consumed:   utils.ValueOr(p.Consumed, s.Consumed),
		Goal:       utils.ValueOr(p.Goal, s.Goal),
		Streak:     utils.ValueOr(p.Streak, s.Streak),
		BestStreak: utils.ValueOr(p.BestStreak, s.BestStreak),
	}
}
