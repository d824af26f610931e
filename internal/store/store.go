// Package store holds the booked travel packages.
package store

import (
	"fmt"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/google/uuid"
)

type Store struct {
	packages []*domain.TravelPackage
}

func New() *Store {
	return &Store{}
}

// Create books accommodation for customer and marks it unavailable.
// Packages are never cancelled, so the accommodation stays booked for the
// life of the process.
func (s *Store) Create(customer *domain.Customer, accommodation *domain.Accommodation) (*domain.TravelPackage, error) {
	if customer == nil || accommodation == nil {
		return nil, fmt.Errorf("%w: customer and accommodation are required", domain.ErrInvalidArgument)
	}
	if !accommodation.Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccommodationUnavailable, accommodation.Name)
	}

	pkg := &domain.TravelPackage{
		ID:            uuid.NewString(),
		Customer:      customer,
		Accommodation: accommodation,
	}
	accommodation.Available = false
	s.packages = append(s.packages, pkg)
	return pkg, nil
}

// SetLiftPassDays overwrites the lift-pass day count; negative values become 0.
func SetLiftPassDays(pkg *domain.TravelPackage, days int) {
	if days < 0 {
		days = 0
	}
	pkg.LiftPassDays = days
}

// AddLessons adds qty of lesson to pkg. A zero lesson or non-positive qty is
// ignored. The lesson level must match the customer's ski level.
func AddLessons(pkg *domain.TravelPackage, lesson domain.Lesson, qty int) error {
	if lesson == (domain.Lesson{}) || qty <= 0 {
		return nil
	}
	if pkg.Customer == nil || !lesson.Level.Matches(pkg.Customer.SkiLevel) {
		level := domain.SkiLevel("")
		if pkg.Customer != nil {
			level = pkg.Customer.SkiLevel
		}
		return fmt.Errorf("%w: lesson %s, customer %s", domain.ErrLevelMismatch, lesson.Level, level)
	}

	for i := range pkg.Lessons {
		if pkg.Lessons[i].Lesson == lesson {
			pkg.Lessons[i].Quantity += qty
			return nil
		}
	}
	pkg.Lessons = append(pkg.Lessons, domain.LessonLine{Lesson: lesson, Quantity: qty})
	return nil
}

// Restore appends a package loaded from storage without touching availability.
func (s *Store) Restore(pkg *domain.TravelPackage) {
	if pkg.ID == "" {
		pkg.ID = uuid.NewString()
	}
	s.packages = append(s.packages, pkg)
}

func (s *Store) Get(id string) (*domain.TravelPackage, bool) {
	for _, p := range s.packages {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// All returns the packages in booking order.
func (s *Store) All() []*domain.TravelPackage {
	return append([]*domain.TravelPackage(nil), s.packages...)
}

func (s *Store) Len() int {
	return len(s.packages)
}

func (s *Store) Reset() {
	s.packages = nil
}
