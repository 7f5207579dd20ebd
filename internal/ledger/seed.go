package ledger

import (
	"time"

	"github.com/google/uuid"

	"example.com/healthpoints/internal/catalog"
)

// NewWithDemoData returns a ledger pre-populated with sample history for
// local development. The running total is recomputed from the seeded
// transactions, so the sum invariant holds from the start.
func NewWithDemoData() *Ledger {
	l := New()

	now := l.now()
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	l.transactions = []Transaction{
		{ID: uuid.NewString(), Title: "Ежедневный бонус", Points: 5, OccurredAt: now, Icon: "star"},
		{ID: uuid.NewString(), Title: "10000 шагов", Points: 15, OccurredAt: yesterday, Icon: "figure.walk"},
		{ID: uuid.NewString(), Title: "Тренировка в зале", Points: 20, OccurredAt: twoDaysAgo, Icon: "dumbbell"},
	}

	l.activities = []Activity{
		{ID: uuid.NewString(), Kind: catalog.Gym, Amount: 0, DurationMin: 60, OccurredAt: yesterday, Points: 20},
		{ID: uuid.NewString(), Kind: catalog.WaterIntake, Amount: 1500, DurationMin: 0, OccurredAt: now, Points: 6},
	}

	seedAchievements := []Achievement{
		{ID: uuid.NewString(), Title: "Первые шаги", Description: "Начало пути к здоровому образу жизни", Icon: "flag", Points: 10, UnlockedAt: twoDaysAgo},
		{ID: uuid.NewString(), Title: "Регулярность", Description: "3 дня активности подряд", Icon: "calendar", Points: 15, UnlockedAt: yesterday},
	}
	for _, a := range seedAchievements {
		l.achievements = append(l.achievements, a)
		l.unlocked[a.Title] = struct{}{}
	}

	l.total = 0
	for _, tx := range l.transactions {
		l.total += tx.Points
	}
	return l
}

// newAt is a test hook: a ledger whose clock is controlled by the caller.
func newAt(now func() time.Time) *Ledger {
	l := New()
	l.now = now
	return l
}
