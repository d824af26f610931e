package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Domenick1991/skiresort/internal/domain"
)

type FileCustomerRepository struct {
	path string
}

func NewFileCustomerRepository(path string) CustomerRepository {
	return &FileCustomerRepository{path: path}
}

func (r *FileCustomerRepository) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	found, err := readJSON(r.path, &customers)
	if err != nil || !found {
		return nil, err
	}
	return customers, nil
}

func (r *FileCustomerRepository) SaveCustomers(ctx context.Context, customers []*domain.Customer) error {
	return writeJSON(r.path, customerRecords(customers))
}

type FilePackageRepository struct {
	path string
}

func NewFilePackageRepository(path string) PackageRepository {
	return &FilePackageRepository{path: path}
}

func (r *FilePackageRepository) LoadPackages(ctx context.Context) ([]*domain.TravelPackage, error) {
	var records []packageRecord
	found, err := readJSON(r.path, &records)
	if err != nil || !found {
		return nil, err
	}
	packages := make([]*domain.TravelPackage, 0, len(records))
	for _, rec := range records {
		packages = append(packages, rec.toDomain())
	}
	return packages, nil
}

func (r *FilePackageRepository) SavePackages(ctx context.Context, packages []*domain.TravelPackage) error {
	records := make([]packageRecord, 0, len(packages))
	for _, p := range packages {
		records = append(records, toPackageRecord(p))
	}
	return writeJSON(r.path, records)
}

// readJSON reports found=false when path does not exist.
func readJSON(path string, v any) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		// a zero-byte file is a first run, not corruption
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: decode %s: %v", domain.ErrPersistenceCorrupt, path, err)
	}
	return true, nil
}

// writeJSON replaces path atomically through a temp file in the same directory.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

var (
	_ CustomerRepository = (*FileCustomerRepository)(nil)
	_ PackageRepository  = (*FilePackageRepository)(nil)
)
