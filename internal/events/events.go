// Package events defines the payloads emitted after accepted ledger mutations.
package events

import "time"

// Event type names carried in the event_type message header.
const (
	TypeActivityRecorded    = "points.activity_recorded"
	TypePointsAwarded       = "points.awarded"
	TypeAchievementUnlocked = "points.achievement_unlocked"
)

// ActivityRecorded is emitted when a manual activity is scored and ledgered.
type ActivityRecorded struct {
	ActivityID  string    `json:"activity_id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	DurationMin int       `json:"duration_min"`
	Points      int       `json:"points"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PointsAwarded is emitted for every transaction appended to the ledger.
type PointsAwarded struct {
	TransactionID string    `json:"transaction_id"`
	Title         string    `json:"title"`
	Points        int       `json:"points"`
	Icon          string    `json:"icon"`
	TotalPoints   int       `json:"total_points"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// AchievementUnlocked is emitted once per achievement, on first unlock only.
type AchievementUnlocked struct {
	AchievementID string    `json:"achievement_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon"`
	Points        int       `json:"points"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
