package aquamodel

// Statistics is the read-only record returned by /api/statistics.
type Statistics struct {
	LifetimeConsumed        int     `json:"lifetime_consumed"`
	AverageDailyConsumption float64 `json:"average_daily_consumption"`
	DaysSinceRegistration   int     `json:"days_since_registration"`
	BestStreak              int     `json:"best_streak"`
	CurrentGoal             int     `json:"current_goal,omitempty"`
}
