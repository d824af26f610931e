package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/skiresort/config"
	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileConfig(t *testing.T, strict bool) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{Storage: config.StorageConfig{
		Backend:       config.StorageFile,
		CustomersPath: filepath.Join(dir, "customers.json"),
		PackagesPath:  filepath.Join(dir, "packages.json"),
		StrictLoad:    strict,
	}}
}

func TestNewReconciler_FileBackend(t *testing.T) {
	cfg := fileConfig(t, false)

	r, closeFn, err := NewReconciler(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	w := world.New(catalog.Default())
	report, err := r.Reconcile(context.Background(), w)
	require.NoError(t, err)
	assert.True(t, report.SeededDefaults)
}

func TestNewReconciler_StrictLoadFromConfig(t *testing.T) {
	cfg := fileConfig(t, true)
	require.NoError(t, os.WriteFile(cfg.Storage.PackagesPath, []byte("{broken"), 0o644))

	r, closeFn, err := NewReconciler(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	_, err = r.Reconcile(context.Background(), world.New(catalog.Default()))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceCorrupt)
}
