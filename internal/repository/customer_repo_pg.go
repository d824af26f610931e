package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefined_table: nothing has been saved yet
const pgUndefinedTable = "42P01"

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

func (r *PGCustomerRepository) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, ski_level FROM customers ORDER BY position`)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.SkiLevel); err != nil {
			return nil, fmt.Errorf("%w: scan customer: %v", domain.ErrPersistenceCorrupt, err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PGCustomerRepository) SaveCustomers(ctx context.Context, customers []*domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM customers`); err != nil {
		return err
	}

	records := customerRecords(customers)
	rows := make([][]any, 0, len(records))
	for i, c := range records {
		rows = append(rows, []any{c.ID, c.Name, string(c.SkiLevel), i})
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"customers"}, []string{"id", "name", "ski_level", "position"}, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy customers: %w", err)
	}

	return tx.Commit(ctx)
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
