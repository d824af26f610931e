package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/skiresort/config"
	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewReconciler opens the configured storage backend. The returned close
// func releases it and is never nil.
func NewReconciler(ctx context.Context, cfg *config.Config) (*reconcile.Reconciler, func(), error) {
	opts := []reconcile.Option{reconcile.WithStrictLoad(cfg.Storage.StrictLoad)}

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect postgres: %w", err)
		}
		if err := repository.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		r := reconcile.New(repository.NewCustomerRepository(pool), repository.NewPackageRepository(pool), opts...)
		return r, pool.Close, nil
	default:
		r := reconcile.New(
			repository.NewFileCustomerRepository(cfg.Storage.CustomersPath),
			repository.NewFilePackageRepository(cfg.Storage.PackagesPath),
			opts...,
		)
		return r, func() {}, nil
	}
}
