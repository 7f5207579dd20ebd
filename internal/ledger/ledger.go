// Package ledger owns the append-only points log and the achievement set.
package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/healthpoints/internal/achievements"
	"example.com/healthpoints/internal/catalog"
	"example.com/healthpoints/internal/scoring"
)

// RecentAchievementCount caps the summary view of latest unlocks.
const RecentAchievementCount = 3

// Ledger accumulates point transactions, manual activities and achievements.
//
// Every mutation runs as a single critical section: score, append, total
// update and achievement scan complete before the next mutation is accepted.
// Reads return copies, so callers never observe an in-flight mutation.
type Ledger struct {
	mu           sync.Mutex
	total        int
	transactions []Transaction
	activities   []Activity
	achievements []Achievement
	unlocked     map[string]struct{} // achievement titles, dedup index
	now          func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		unlocked: make(map[string]struct{}),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RecordActivity scores a manual activity, appends its record and points
// transaction, then grants any newly qualifying achievements together with
// their bonus transactions. Negative inputs clamp to zero; the call never
// fails. Returns the created record and the achievements unlocked by it.
func (l *Ledger) RecordActivity(kind catalog.Kind, amount float64, durationMin int) (Activity, []Achievement) {
	if amount < 0 {
		amount = 0
	}
	if durationMin < 0 {
		durationMin = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	points := scoring.ActivityPoints(kind, amount, durationMin)
	activity := Activity{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		DurationMin: durationMin,
		OccurredAt:  l.now(),
		Points:      points,
	}
	l.activities = append(l.activities, activity)
	l.append("Активность: "+kind.Name(), points, kind.Icon())

	var unlocked []Achievement
	for _, desc := range achievements.Match(kind, amount, durationMin) {
		if granted, ok := l.grant(desc); ok {
			unlocked = append(unlocked, granted)
		}
	}
	return activity, unlocked
}

// RecordTransaction appends a free-form transaction, e.g. a daily bonus.
// Points may be negative; a reversal is just another transaction.
func (l *Ledger) RecordTransaction(title string, points int, icon string) Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.append(title, points, icon)
}

// append adds a transaction and keeps the running total in sync.
// Callers must hold l.mu.
func (l *Ledger) append(title string, points int, icon string) Transaction {
	tx := Transaction{
		ID:         uuid.NewString(),
		Title:      title,
		Points:     points,
		OccurredAt: l.now(),
		Icon:       icon,
	}
	l.transactions = append(l.transactions, tx)
	l.total += points
	return tx
}

// grant unlocks an achievement unless its title was unlocked before. The
// achievement entry and its bonus transaction are appended together; a
// duplicate title is silently absorbed. Callers must hold l.mu.
func (l *Ledger) grant(desc achievements.Descriptor) (Achievement, bool) {
	if _, seen := l.unlocked[desc.Title]; seen {
		return Achievement{}, false
	}
	granted := Achievement{
		ID:          uuid.NewString(),
		Title:       desc.Title,
		Description: desc.Description,
		Icon:        desc.Icon,
		Points:      desc.Points,
		UnlockedAt:  l.now(),
	}
	l.achievements = append(l.achievements, granted)
	l.unlocked[desc.Title] = struct{}{}
	l.append("Достижение: "+desc.Title, desc.Points, desc.Icon)
	return granted, true
}

// TotalPoints returns the running total, always equal to the sum of all
// transaction points.
func (l *Ledger) TotalPoints() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Transactions returns the transaction log in insertion order, oldest first.
func (l *Ledger) Transactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Activities returns manual activity records in submission order.
func (l *Ledger) Activities() []Activity {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Activity, len(l.activities))
	copy(out, l.activities)
	return out
}

// Achievements returns every unlocked achievement in unlock order.
func (l *Ledger) Achievements() []Achievement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Achievement, len(l.achievements))
	copy(out, l.achievements)
	return out
}

// RecentAchievements returns the latest unlocks, most recent first, capped at
// RecentAchievementCount.
func (l *Ledger) RecentAchievements() []Achievement {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Achievement, len(l.achievements))
	copy(out, l.achievements)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnlockedAt.After(out[j].UnlockedAt)
	})
	if len(out) > RecentAchievementCount {
		out = out[:RecentAchievementCount]
	}
	return out
}
