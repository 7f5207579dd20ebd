// Package catalog defines the closed set of trackable activity kinds.
package catalog

import "fmt"

// Kind identifies a trackable activity category.
type Kind string

const (
	Walking     Kind = "walking"
	Running     Kind = "running"
	Cycling     Kind = "cycling"
	Swimming    Kind = "swimming"
	Yoga        Kind = "yoga"
	Gym         Kind = "gym"
	Meditation  Kind = "meditation"
	WaterIntake Kind = "waterIntake"
	Sleep       Kind = "sleep"
)

// Info carries the display metadata attached to a Kind.
type Info struct {
	Name           string
	Icon           string
	Unit           string
	RequiresAmount bool
}

var kinds = []Kind{
	Walking, Running, Cycling, Swimming, Yoga, Gym, Meditation, WaterIntake, Sleep,
}

var registry = map[Kind]Info{
	Walking:     {Name: "Ходьба", Icon: "figure.walk", Unit: "км", RequiresAmount: true},
	Running:     {Name: "Бег", Icon: "figure.run", Unit: "км", RequiresAmount: true},
	Cycling:     {Name: "Велосипед", Icon: "bicycle", Unit: "км", RequiresAmount: true},
	Swimming:    {Name: "Плавание", Icon: "figure.pool.swim", Unit: "м", RequiresAmount: true},
	Yoga:        {Name: "Йога", Icon: "figure.mind.and.body", Unit: "мин", RequiresAmount: false},
	Gym:         {Name: "Тренажерный зал", Icon: "dumbbell", Unit: "мин", RequiresAmount: false},
	Meditation:  {Name: "Медитация", Icon: "brain", Unit: "мин", RequiresAmount: false},
	WaterIntake: {Name: "Питье воды", Icon: "drop", Unit: "мл", RequiresAmount: true},
	Sleep:       {Name: "Сон", Icon: "bed.double", Unit: "мин", RequiresAmount: false},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Lookup returns the metadata for a kind.
func Lookup(kind Kind) (Info, bool) {
	info, ok := registry[kind]
	return info, ok
}

// Parse converts a wire string into a known Kind.
func Parse(raw string) (Kind, error) {
	kind := Kind(raw)
	if _, ok := registry[kind]; !ok {
		return "", fmt.Errorf("unknown activity kind: %q", raw)
	}
	return kind, nil
}

// Name returns the display name for a kind, or the raw kind when unknown.
func (k Kind) Name() string {
	if info, ok := registry[k]; ok {
		return info.Name
	}
	return string(k)
}

// Icon returns the display icon for a kind.
func (k Kind) Icon() string {
	if info, ok := registry[k]; ok {
		return info.Icon
	}
	return ""
}

// Unit returns the measurement unit label for a kind.
func (k Kind) Unit() string {
	if info, ok := registry[k]; ok {
		return info.Unit
	}
	return ""
}

// RequiresAmount reports whether the kind carries a numeric amount beyond duration.
func (k Kind) RequiresAmount() bool {
	if info, ok := registry[k]; ok {
		return info.RequiresAmount
	}
	return false
}
