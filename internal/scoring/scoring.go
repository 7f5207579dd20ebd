// Package scoring maps activity measurements to points.
package scoring

import (
	"time"

	"example.com/healthpoints/internal/catalog"
)

// DailySnapshot is a read-only view of today's platform-measured metrics.
// The service never fetches these itself; collectors push them in.
type DailySnapshot struct {
	Steps            int
	ActiveEnergyKcal float64
	ExerciseMinutes  int
}

// SnapshotPoints breaks down the potential points for a daily snapshot.
// These are informational until the caller explicitly records them.
type SnapshotPoints struct {
	Steps    int
	Energy   int
	Exercise int
}

// Total sums the snapshot breakdown.
func (p SnapshotPoints) Total() int {
	return p.Steps + p.Energy + p.Exercise
}

// StepsPoints awards 1 point per 1000 steps plus a threshold bonus.
// Only the highest applicable bonus tier applies.
func StepsPoints(steps int) int {
	if steps <= 0 {
		return 0
	}
	points := steps / 1000
	switch {
	case steps >= 10000:
		points += 5
	case steps >= 5000:
		points += 2
	}
	return points
}

// EnergyPoints awards 1 point per 100 active kilocalories plus a threshold bonus.
func EnergyPoints(kcal float64) int {
	if kcal <= 0 {
		return 0
	}
	points := int(kcal / 100)
	switch {
	case kcal >= 500:
		points += 5
	case kcal >= 300:
		points += 2
	}
	return points
}

// ExercisePoints awards 2 points per 10 exercise minutes plus a threshold bonus.
func ExercisePoints(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	points := (minutes / 10) * 2
	switch {
	case minutes >= 60:
		points += 10
	case minutes >= 30:
		points += 5
	}
	return points
}

// Snapshot scores each metric of a daily snapshot independently.
func Snapshot(snap DailySnapshot) SnapshotPoints {
	return SnapshotPoints{
		Steps:    StepsPoints(snap.Steps),
		Energy:   EnergyPoints(snap.ActiveEnergyKcal),
		Exercise: ExercisePoints(snap.ExerciseMinutes),
	}
}

// WeekDay is one day of the trailing-7-day metric series, oldest first.
type WeekDay struct {
	Date             time.Time
	Steps            int
	ActiveEnergyKcal float64
}

// WeekDayPoints pairs a day with its potential points.
type WeekDayPoints struct {
	Day    WeekDay
	Steps  int
	Energy int
}

// Week scores a trailing-week series day by day and returns the aggregate.
func Week(days []WeekDay) ([]WeekDayPoints, int) {
	out := make([]WeekDayPoints, 0, len(days))
	total := 0
	for _, day := range days {
		scored := WeekDayPoints{
			Day:    day,
			Steps:  StepsPoints(day.Steps),
			Energy: EnergyPoints(day.ActiveEnergyKcal),
		}
		total += scored.Steps + scored.Energy
		out = append(out, scored)
	}
	return out, total
}

// ActivityPoints scores a manually logged activity.
//
// Amount is measured in the kind's unit (км, м or мл) and ignored for
// duration-only kinds. Inputs must be non-negative; callers clamp negative
// values to zero before calling. Fractional base contributions truncate.
func ActivityPoints(kind catalog.Kind, amount float64, durationMin int) int {
	var points int

	switch kind {
	case catalog.Walking:
		points = int(amount * 10)
	case catalog.Running:
		points = int(amount * 15)
	case catalog.Cycling:
		points = int(amount * 8)
	case catalog.Swimming:
		points = int(amount / 100)
	case catalog.Yoga, catalog.Meditation:
		points = durationMin / 5
	case catalog.Gym:
		points = durationMin / 3
	case catalog.WaterIntake:
		points = int(amount / 250)
	case catalog.Sleep:
		points = durationMin / 30
	}

	// Uniform duration bonus on top of the per-kind base.
	switch {
	case durationMin >= 60:
		points += 5
	case durationMin >= 30:
		points += 2
	}

	return points
}
