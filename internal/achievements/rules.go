// Package achievements holds the one-time unlock rule table.
package achievements

import "example.com/healthpoints/internal/catalog"

// Descriptor is the fixed reward attached to a satisfied rule. Title doubles
// as the deduplication key: the ledger grants each title at most once.
type Descriptor struct {
	Title       string
	Description string
	Icon        string
	Points      int
}

type rule struct {
	minAmount   float64
	minDuration int
	descriptor  Descriptor
}

var kindRules = map[catalog.Kind]rule{
	catalog.Walking: {minAmount: 5, descriptor: Descriptor{
		Title:       "Длительная прогулка",
		Description: "Прошли 5+ км за одну прогулку",
		Icon:        "figure.walk",
		Points:      10,
	}},
	catalog.Running: {minAmount: 3, descriptor: Descriptor{
		Title:       "Бегун",
		Description: "Пробежали 3+ км за одну тренировку",
		Icon:        "figure.run",
		Points:      15,
	}},
	catalog.Cycling: {minAmount: 10, descriptor: Descriptor{
		Title:       "Велосипедист",
		Description: "Проехали 10+ км на велосипеде",
		Icon:        "bicycle",
		Points:      20,
	}},
	catalog.Swimming: {minAmount: 500, descriptor: Descriptor{
		Title:       "Пловец",
		Description: "Проплыли 500+ метров",
		Icon:        "figure.pool.swim",
		Points:      15,
	}},
	catalog.Yoga: {minDuration: 30, descriptor: Descriptor{
		Title:       "Йог",
		Description: "30+ минут йоги",
		Icon:        "figure.mind.and.body",
		Points:      10,
	}},
	catalog.Gym: {minDuration: 60, descriptor: Descriptor{
		Title:       "Силач",
		Description: "60+ минут в тренажерном зале",
		Icon:        "dumbbell",
		Points:      15,
	}},
	catalog.Meditation: {minDuration: 15, descriptor: Descriptor{
		Title:       "Медитирующий",
		Description: "15+ минут медитации",
		Icon:        "brain",
		Points:      10,
	}},
	catalog.WaterIntake: {minAmount: 2000, descriptor: Descriptor{
		Title:       "Гидратация",
		Description: "Выпили 2+ литра воды",
		Icon:        "drop",
		Points:      10,
	}},
	catalog.Sleep: {minDuration: 480, descriptor: Descriptor{
		Title:       "Здоровый сон",
		Description: "Спали 8+ часов",
		Icon:        "bed.double",
		Points:      10,
	}},
}

// marathonRule fires for any kind once a single session reaches two hours.
var marathonRule = rule{minDuration: 120, descriptor: Descriptor{
	Title:       "Марафонец",
	Description: "2+ часа активности",
	Icon:        "clock",
	Points:      20,
}}

func (r rule) matches(amount float64, durationMin int) bool {
	if r.minAmount > 0 {
		return amount >= r.minAmount
	}
	return durationMin >= r.minDuration
}

// Match returns every rule descriptor the activity satisfies: the
// kind-specific rule first, then the kind-independent marathon rule. A single
// activity can satisfy both. Deduplication against already-unlocked titles is
// the ledger's responsibility.
func Match(kind catalog.Kind, amount float64, durationMin int) []Descriptor {
	var out []Descriptor
	if r, ok := kindRules[kind]; ok && r.matches(amount, durationMin) {
		out = append(out, r.descriptor)
	}
	if durationMin >= marathonRule.minDuration {
		out = append(out, marathonRule.descriptor)
	}
	return out
}
