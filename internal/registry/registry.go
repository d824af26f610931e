// Package registry keeps the resort's customers and allocates their ids.
package registry

import (
	"fmt"

	"github.com/Domenick1991/skiresort/internal/domain"
)

type Registry struct {
	customers []*domain.Customer
}

func New() *Registry {
	return &Registry{}
}

// NextID returns one more than the largest id in use, or 1 when empty.
func (r *Registry) NextID() int {
	max := 0
	for _, c := range r.customers {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func (r *Registry) Add(c *domain.Customer) error {
	if c == nil {
		return fmt.Errorf("%w: nil customer", domain.ErrInvalidArgument)
	}
	if _, ok := r.ByID(c.ID); ok {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateID, c.ID)
	}
	r.customers = append(r.customers, c)
	return nil
}

// Exists reports whether a registered customer has the candidate's id, or
// its name and ski level ignoring case.
func (r *Registry) Exists(candidate *domain.Customer) bool {
	_, ok := r.Find(candidate)
	return ok
}

// Find returns the first registered customer that Exists would match.
func (r *Registry) Find(candidate *domain.Customer) (*domain.Customer, bool) {
	if candidate == nil {
		return nil, false
	}
	for _, c := range r.customers {
		if c.SameAs(candidate) {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) ByID(id int) (*domain.Customer, bool) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// All returns the customers in insertion order.
func (r *Registry) All() []*domain.Customer {
	return append([]*domain.Customer(nil), r.customers...)
}

func (r *Registry) Len() int {
	return len(r.customers)
}

// Reset drops every customer.
func (r *Registry) Reset() {
	r.customers = nil
}
