package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/world"
)

type CustomerUseCase interface {
	List(ctx context.Context) ([]domain.Customer, error)
	NextID(ctx context.Context) (int, error)
	Add(ctx context.Context, input AddCustomerInput) (*domain.Customer, error)
}

type AddCustomerInput struct {
	Name     string `json:"name"`
	SkiLevel string `json:"ski_level"`
}

type CustomerService struct {
	world *world.World
}

func NewCustomerService(w *world.World) *CustomerService {
	return &CustomerService{world: w}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0)
	err := s.world.View(func(st *world.State) error {
		for _, c := range st.Customers.All() {
			out = append(out, *c)
		}
		return nil
	})
	return out, err
}

func (s *CustomerService) NextID(ctx context.Context) (int, error) {
	var id int
	err := s.world.View(func(st *world.State) error {
		id = st.Customers.NextID()
		return nil
	})
	return id, err
}

// Add registers a new customer under the next free id.
func (s *CustomerService) Add(ctx context.Context, input AddCustomerInput) (*domain.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	level, err := domain.ParseSkiLevel(input.SkiLevel)
	if err != nil {
		return nil, err
	}

	var added domain.Customer
	err = s.world.Update(func(st *world.State) error {
		c := &domain.Customer{ID: st.Customers.NextID(), Name: name, SkiLevel: level}
		if err := st.Customers.Add(c); err != nil {
			return err
		}
		added = *c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add customer: %w", err)
	}
	return &added, nil
}

var _ CustomerUseCase = (*CustomerService)(nil)
