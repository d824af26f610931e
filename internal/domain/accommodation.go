package domain

import "fmt"

// Accommodation is keyed by Name. Available is derived from the packages
// that reference it.
type Accommodation struct {
	Name        string `json:"name"`
	PricePerDay Money  `json:"price_per_day_cents"`
	Available   bool   `json:"available"`
}

func (a Accommodation) String() string {
	state := "Available"
	if !a.Available {
		state = "Booked"
	}
	return fmt.Sprintf("%s - %s/day (%s)", a.Name, a.PricePerDay, state)
}
