package api

import (
	"time"

	"example.com/healthpoints/internal/ledger"
)

// ActivityView exposes a recorded manual activity.
type ActivityView struct {
	ActivityID  string    `json:"activity_id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Unit        string    `json:"unit"`
	DurationMin int       `json:"duration_min"`
	Summary     string    `json:"summary"`
	Points      int       `json:"points"`
	Icon        string    `json:"icon"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TransactionView exposes one ledger transaction with its formatted sign.
type TransactionView struct {
	TransactionID   string    `json:"transaction_id"`
	Title           string    `json:"title"`
	Points          int       `json:"points"`
	FormattedPoints string    `json:"formatted_points"`
	Icon            string    `json:"icon"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// AchievementView exposes an unlocked achievement.
type AchievementView struct {
	AchievementID string    `json:"achievement_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Points        int       `json:"points"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	UnlockedDate  string    `json:"unlocked_date"`
}

// RecordActivityResponse describes the response body for create.
type RecordActivityResponse struct {
	Activity    ActivityView      `json:"activity"`
	Unlocked    []AchievementView `json:"unlocked,omitempty"`
	TotalPoints int               `json:"total_points"`
}

// ListActivitiesResponse packages the activity list.
type ListActivitiesResponse struct {
	Items []ActivityView `json:"items"`
}

// RecordTransactionResponse describes the response for a direct award.
type RecordTransactionResponse struct {
	Transaction TransactionView `json:"transaction"`
	TotalPoints int             `json:"total_points"`
}

// PointsResponse merges the running total with the transaction history.
type PointsResponse struct {
	TotalPoints  int               `json:"total_points"`
	Transactions []TransactionView `json:"transactions"`
}

// AchievementsResponse packages achievement views.
type AchievementsResponse struct {
	Items []AchievementView `json:"items"`
}

// DailyMetricsResponse breaks down the potential points of a daily snapshot.
type DailyMetricsResponse struct {
	StepsPoints    int `json:"steps_points"`
	EnergyPoints   int `json:"energy_points"`
	ExercisePoints int `json:"exercise_points"`
	TotalPoints    int `json:"total_points"`
}

// WeekDayView is one scored day of the weekly series.
type WeekDayView struct {
	Date         time.Time `json:"date"`
	Steps        int       `json:"steps"`
	StepsPoints  int       `json:"steps_points"`
	EnergyKcal   float64   `json:"active_energy_kcal"`
	EnergyPoints int       `json:"energy_points"`
}

// WeeklyMetricsResponse packages the scored weekly series.
type WeeklyMetricsResponse struct {
	Days        []WeekDayView `json:"days"`
	TotalPoints int           `json:"total_points"`
}

func toActivityView(activity ledger.Activity) ActivityView {
	return ActivityView{
		ActivityID:  activity.ID,
		Kind:        string(activity.Kind),
		Name:        activity.Kind.Name(),
		Amount:      activity.Amount,
		Unit:        activity.Kind.Unit(),
		DurationMin: activity.DurationMin,
		Summary:     activity.Summary(),
		Points:      activity.Points,
		Icon:        activity.Kind.Icon(),
		OccurredAt:  activity.OccurredAt,
	}
}

func toTransactionView(tx ledger.Transaction) TransactionView {
	return TransactionView{
		TransactionID:   tx.ID,
		Title:           tx.Title,
		Points:          tx.Points,
		FormattedPoints: tx.FormattedPoints(),
		Icon:            tx.Icon,
		OccurredAt:      tx.OccurredAt,
	}
}

func toAchievementView(achievement ledger.Achievement) AchievementView {
	return AchievementView{
		AchievementID: achievement.ID,
		Title:         achievement.Title,
		Description:   achievement.Description,
		Icon:          achievement.Icon,
		Points:        achievement.Points,
		UnlockedAt:    achievement.UnlockedAt,
		UnlockedDate:  achievement.FormattedDate(),
	}
}
