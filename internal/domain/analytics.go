package domain

// TimeSpent is one row of the per-skill / per-project hours aggregation.
type TimeSpent struct {
	ID         string  `bson:"id" json:"id"`
	Name       string  `bson:"name" json:"name"`
	TotalHours float64 `bson:"total_hours" json:"total_hours"`
	TaskCount  int     `bson:"task_count" json:"task_count"`
}

type ProductivityOverview struct {
	TotalEvents    int64                   `json:"total_events"`
	Completed      int64                   `json:"completed"`
	Skipped        int64                   `json:"skipped"`
	Cancelled      int64                   `json:"cancelled"`
	CompletionRate float64                 `json:"completion_rate"`
	HoursByStatus  map[EventStatus]float64 `json:"hours_by_status"`
}

// AdminStats is the admin dashboard rollup.
type AdminStats struct {
	Users struct {
		Total       int64 `json:"total"`
		Pending     int64 `json:"pending"`
		Active      int64 `json:"active"`
		Deactivated int64 `json:"deactivated"`
		Admins      int64 `json:"admins"`
	} `json:"users"`
	Content struct {
		Events          int64 `json:"events"`
		Flashcards      int64 `json:"flashcards"`
		DiaryEntries    int64 `json:"diary_entries"`
		ImprovementLogs int64 `json:"improvement_logs"`
	} `json:"content"`
}
