// Package catalog holds the resort's fixed reference data: accommodations,
// lesson prices and lift-pass prices.
package catalog

import (
	"iter"
	"strings"

	"github.com/Domenick1991/skiresort/internal/domain"
)

type Catalog struct {
	accommodations []*domain.Accommodation
	lessons        []domain.Lesson
	liftPasses     []domain.LiftPass
}

func New(accommodations []domain.Accommodation, lessons []domain.Lesson, liftPasses []domain.LiftPass) *Catalog {
	c := &Catalog{
		accommodations: make([]*domain.Accommodation, 0, len(accommodations)),
		lessons:        append([]domain.Lesson(nil), lessons...),
		liftPasses:     append([]domain.LiftPass(nil), liftPasses...),
	}
	for _, a := range accommodations {
		a := a
		c.accommodations = append(c.accommodations, &a)
	}
	return c
}

// Default returns the resort's built-in catalog with every accommodation available.
func Default() *Catalog {
	return New(DefaultAccommodations(), DefaultLessons(), DefaultLiftPasses())
}

// Accommodations returns the canonical instances in catalog order.
func (c *Catalog) Accommodations() []*domain.Accommodation {
	return append([]*domain.Accommodation(nil), c.accommodations...)
}

func (c *Catalog) Lessons() []domain.Lesson {
	return append([]domain.Lesson(nil), c.lessons...)
}

// LiftPasses is display data; lift-pass cost comes from the pricing package.
func (c *Catalog) LiftPasses() []domain.LiftPass {
	return append([]domain.LiftPass(nil), c.liftPasses...)
}

// FindAccommodationByName matches name ignoring case.
func (c *Catalog) FindAccommodationByName(name string) (*domain.Accommodation, bool) {
	if name == "" {
		return nil, false
	}
	for _, a := range c.accommodations {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return nil, false
}

func (c *Catalog) FindLesson(level domain.SkiLevel) (domain.Lesson, bool) {
	for _, l := range c.lessons {
		if l.Level.Matches(level) {
			return l, true
		}
	}
	return domain.Lesson{}, false
}

// AvailableAccommodations yields available accommodations in catalog order.
// Availability is read as the sequence is consumed, so each range sees the
// current state.
func (c *Catalog) AvailableAccommodations() iter.Seq[*domain.Accommodation] {
	return func(yield func(*domain.Accommodation) bool) {
		for _, a := range c.accommodations {
			if !a.Available {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// ResetAvailability marks every accommodation available.
func (c *Catalog) ResetAvailability() {
	for _, a := range c.accommodations {
		a.Available = true
	}
}
