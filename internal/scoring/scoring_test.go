package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/healthpoints/internal/catalog"
)

func TestStepsPointsThresholds(t *testing.T) {
	require.Equal(t, 0, StepsPoints(0))
	require.Equal(t, 0, StepsPoints(999))
	require.Equal(t, 4, StepsPoints(4999))
	require.Equal(t, 7, StepsPoints(5000))
	require.Equal(t, 11, StepsPoints(9999))
	require.Equal(t, 15, StepsPoints(10000))
	require.Equal(t, 17, StepsPoints(12500))
}

func TestStepsPointsNonDecreasing(t *testing.T) {
	prev := 0
	for steps := 0; steps <= 15000; steps += 250 {
		got := StepsPoints(steps)
		require.GreaterOrEqual(t, got, prev, "steps=%d", steps)
		prev = got
	}
}

func TestEnergyPointsThresholds(t *testing.T) {
	require.Equal(t, 0, EnergyPoints(0))
	require.Equal(t, 2, EnergyPoints(299))
	require.Equal(t, 5, EnergyPoints(300))
	require.Equal(t, 6, EnergyPoints(499.9))
	require.Equal(t, 10, EnergyPoints(500))
}

func TestExercisePointsThresholds(t *testing.T) {
	require.Equal(t, 0, ExercisePoints(0))
	require.Equal(t, 4, ExercisePoints(29))
	require.Equal(t, 11, ExercisePoints(30))
	require.Equal(t, 15, ExercisePoints(59))
	require.Equal(t, 22, ExercisePoints(60))
}

func TestSnapshotTotal(t *testing.T) {
	points := Snapshot(DailySnapshot{Steps: 10000, ActiveEnergyKcal: 500, ExerciseMinutes: 60})
	require.Equal(t, 15, points.Steps)
	require.Equal(t, 10, points.Energy)
	require.Equal(t, 22, points.Exercise)
	require.Equal(t, 47, points.Total())
}

func TestWeekAggregates(t *testing.T) {
	start := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	days := make([]WeekDay, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, WeekDay{Date: start.AddDate(0, 0, i), Steps: 5000, ActiveEnergyKcal: 300})
	}

	scored, total := Week(days)
	require.Len(t, scored, 7)
	for _, day := range scored {
		require.Equal(t, 7, day.Steps)
		require.Equal(t, 5, day.Energy)
	}
	require.Equal(t, 7*12, total)
}

func TestActivityPointsPerKind(t *testing.T) {
	cases := []struct {
		name     string
		kind     catalog.Kind
		amount   float64
		duration int
		want     int
	}{
		{"walking per km", catalog.Walking, 2, 0, 20},
		{"walking truncates", catalog.Walking, 2.29, 0, 22},
		{"running per km", catalog.Running, 3, 0, 45},
		{"cycling per km", catalog.Cycling, 10, 0, 80},
		{"swimming per 100m", catalog.Swimming, 550, 0, 5},
		{"yoga per 5 min", catalog.Yoga, 0, 25, 5},
		{"meditation per 5 min", catalog.Meditation, 0, 14, 2},
		{"gym hour", catalog.Gym, 0, 60, 25},
		{"water per 250ml", catalog.WaterIntake, 1500, 0, 6},
		{"full night sleep", catalog.Sleep, 0, 480, 21},
		{"duration bonus mid tier", catalog.Walking, 1, 30, 12},
		{"duration bonus top tier", catalog.Walking, 1, 60, 15},
		{"zero everything", catalog.Gym, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ActivityPoints(tc.kind, tc.amount, tc.duration))
		})
	}
}
