package ledger

import (
	"fmt"
	"strconv"
	"time"

	"example.com/healthpoints/internal/catalog"
)

// Transaction is one atomic point-earning event. Once appended it is never
// modified or removed; corrections are new transactions with negative points.
type Transaction struct {
	ID         string
	Title      string
	Points     int
	OccurredAt time.Time
	Icon       string
}

// FormattedPoints renders the signed point value, with a leading "+" for
// non-negative amounts.
func (t Transaction) FormattedPoints() string {
	if t.Points >= 0 {
		return "+" + strconv.Itoa(t.Points)
	}
	return strconv.Itoa(t.Points)
}

// FormattedDate renders the transaction time for history views.
func (t Transaction) FormattedDate() string {
	return t.OccurredAt.Format("2 Jan 2006 15:04")
}

// Activity is a manually logged session, immutable after submission.
type Activity struct {
	ID          string
	Kind        catalog.Kind
	Amount      float64
	DurationMin int
	OccurredAt  time.Time
	Points      int
}

// Summary combines amount, unit and duration into the display string used by
// activity lists.
func (a Activity) Summary() string {
	if a.Kind.RequiresAmount() {
		return fmt.Sprintf("%g %s за %d мин", a.Amount, a.Kind.Unit(), a.DurationMin)
	}
	return fmt.Sprintf("%d %s", a.DurationMin, a.Kind.Unit())
}

// Achievement is a one-time unlock. Title is the dedup key: the ledger never
// holds two achievements with the same title.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Points      int
	UnlockedAt  time.Time
}

// FormattedDate renders the unlock date for summary views.
func (a Achievement) FormattedDate() string {
	return a.UnlockedAt.Format("2 Jan 2006")
}
