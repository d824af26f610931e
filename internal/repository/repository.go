package repository

import (
	"context"

	"github.com/Domenick1991/skiresort/internal/domain"
)

// Loaders return (nil, nil) when nothing has been saved yet and an error
// wrapping domain.ErrPersistenceCorrupt when the stored data cannot be decoded.

type CustomerRepository interface {
	LoadCustomers(ctx context.Context) ([]domain.Customer, error)
	SaveCustomers(ctx context.Context, customers []*domain.Customer) error
}

// PackageRepository stores packages with full snapshots of their customer
// and accommodation, so loaded packages never share instances with the
// registry or the catalog.
type PackageRepository interface {
	LoadPackages(ctx context.Context) ([]*domain.TravelPackage, error)
	SavePackages(ctx context.Context, packages []*domain.TravelPackage) error
}
