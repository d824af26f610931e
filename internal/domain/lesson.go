package domain

import "fmt"

// Lesson is a value type; two lessons with the same level and price are
// interchangeable.
type Lesson struct {
	Level SkiLevel `json:"level"`
	Price Money    `json:"price_cents"`
}

func (l Lesson) String() string {
	return fmt.Sprintf("%s Level - %s", l.Level, l.Price)
}

// LiftPass is catalog display data only. Lift-pass cost is computed by the
// pricing package.
type LiftPass struct {
	Name string `json:"name"`
	Cost Money  `json:"cost_cents"`
}

func (p LiftPass) String() string {
	return fmt.Sprintf("%s - %s", p.Name, p.Cost)
}
