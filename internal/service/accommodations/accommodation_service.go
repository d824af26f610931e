package accommodations

import (
	"context"
	"log"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/pricing"
	"github.com/Domenick1991/skiresort/internal/world"
)

type AccommodationUseCase interface {
	List(ctx context.Context) ([]domain.Accommodation, error)
	ListAvailable(ctx context.Context) ([]domain.Accommodation, error)
	Lessons(ctx context.Context) []domain.Lesson
	LiftPasses(ctx context.Context) []domain.LiftPass
	LiftPassCost(days int) domain.Money
}

type Cache interface {
	GetAvailable(ctx context.Context) ([]domain.Accommodation, error)
	SetAvailable(ctx context.Context, accommodations []domain.Accommodation) error
}

type AccommodationService struct {
	world *world.World
	cache Cache
}

// cache may be nil.
func NewAccommodationService(w *world.World, cache Cache) *AccommodationService {
	return &AccommodationService{world: w, cache: cache}
}

func (s *AccommodationService) List(ctx context.Context) ([]domain.Accommodation, error) {
	var out []domain.Accommodation
	err := s.world.View(func(st *world.State) error {
		for _, a := range st.Catalog.Accommodations() {
			out = append(out, *a)
		}
		return nil
	})
	return out, err
}

func (s *AccommodationService) ListAvailable(ctx context.Context) ([]domain.Accommodation, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAvailable(ctx)
		if err != nil {
			log.Printf("availability cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	available := make([]domain.Accommodation, 0)
	err := s.world.View(func(st *world.State) error {
		for a := range st.Catalog.AvailableAccommodations() {
			available = append(available, *a)
		}
		// written under the lock so a booking's invalidation always lands after it
		if s.cache != nil {
			if err := s.cache.SetAvailable(ctx, available); err != nil {
				log.Printf("availability cache write failed: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return available, nil
}

func (s *AccommodationService) Lessons(ctx context.Context) []domain.Lesson {
	var out []domain.Lesson
	_ = s.world.View(func(st *world.State) error {
		out = st.Catalog.Lessons()
		return nil
	})
	return out
}

func (s *AccommodationService) LiftPasses(ctx context.Context) []domain.LiftPass {
	var out []domain.LiftPass
	_ = s.world.View(func(st *world.State) error {
		out = st.Catalog.LiftPasses()
		return nil
	})
	return out
}

func (s *AccommodationService) LiftPassCost(days int) domain.Money {
	return pricing.LiftPassCost(days)
}

var _ AccommodationUseCase = (*AccommodationService)(nil)
