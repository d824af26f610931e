package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGPackageRepository struct {
	db *pgxpool.Pool
}

func NewPackageRepository(db *pgxpool.Pool) PackageRepository {
	return &PGPackageRepository{db: db}
}

func (r *PGPackageRepository) LoadPackages(ctx context.Context) ([]*domain.TravelPackage, error) {
	rows, err := r.db.Query(ctx, `SELECT payload FROM travel_packages ORDER BY position`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var packages []*domain.TravelPackage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		pkg, err := decodePackagePayload(payload)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func (r *PGPackageRepository) SavePackages(ctx context.Context, packages []*domain.TravelPackage) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM travel_packages`); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, p := range packages {
		payload, err := json.Marshal(toPackageRecord(p))
		if err != nil {
			return fmt.Errorf("encode package %s: %w", p.ID, err)
		}
		batch.Queue(`INSERT INTO travel_packages (position, id, payload) VALUES ($1, $2, $3)`, i, p.ID, payload)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert packages: %w", err)
	}

	return tx.Commit(ctx)
}

func decodePackagePayload(payload []byte) (*domain.TravelPackage, error) {
	var rec packageRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: decode package: %v", domain.ErrPersistenceCorrupt, err)
	}
	return rec.toDomain(), nil
}

var _ PackageRepository = (*PGPackageRepository)(nil)
