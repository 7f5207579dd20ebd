package achievements

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/healthpoints/internal/catalog"
)

func TestMatchKindRules(t *testing.T) {
	cases := []struct {
		name     string
		kind     catalog.Kind
		amount   float64
		duration int
		want     string
		points   int
	}{
		{"long walk", catalog.Walking, 5, 40, "Длительная прогулка", 10},
		{"runner", catalog.Running, 3, 20, "Бегун", 15},
		{"cyclist", catalog.Cycling, 10, 45, "Велосипедист", 20},
		{"swimmer", catalog.Swimming, 500, 20, "Пловец", 15},
		{"yogi", catalog.Yoga, 0, 30, "Йог", 10},
		{"strongman", catalog.Gym, 0, 60, "Силач", 15},
		{"meditator", catalog.Meditation, 0, 15, "Медитирующий", 10},
		{"hydration", catalog.WaterIntake, 2000, 0, "Гидратация", 10},
		{"healthy sleep", catalog.Sleep, 0, 480, "Здоровый сон", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.kind, tc.amount, tc.duration)
			require.NotEmpty(t, got)
			require.Equal(t, tc.want, got[0].Title)
			require.Equal(t, tc.points, got[0].Points)
		})
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	require.Empty(t, Match(catalog.Walking, 4.9, 20))
	require.Empty(t, Match(catalog.WaterIntake, 1999, 0))
	require.Empty(t, Match(catalog.Sleep, 0, 479))
}

func TestMatchMarathonAppliesToAnyKind(t *testing.T) {
	got := Match(catalog.Meditation, 0, 120)
	require.Len(t, got, 2)
	require.Equal(t, "Медитирующий", got[0].Title)
	require.Equal(t, "Марафонец", got[1].Title)
	require.Equal(t, 20, got[1].Points)
}

func TestMatchSleepMarathonCombination(t *testing.T) {
	got := Match(catalog.Sleep, 0, 480)
	require.Len(t, got, 2)
	require.Equal(t, "Здоровый сон", got[0].Title)
	require.Equal(t, "Марафонец", got[1].Title)
}

func TestMatchMarathonOnly(t *testing.T) {
	// Below the kind threshold but past two hours.
	got := Match(catalog.Cycling, 4, 130)
	require.Len(t, got, 1)
	require.Equal(t, "Марафонец", got[0].Title)
}
