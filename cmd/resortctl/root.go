package main

import (
	"context"
	"errors"
	"io/fs"

	"github.com/Domenick1991/skiresort/config"
	"github.com/Domenick1991/skiresort/internal/bootstrap"
	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/world"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "resortctl",
		Short:         "Inspect and maintain ski resort booking data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CONFIG_PATH or config.yaml)")

	cmd.AddCommand(newReconcileCmd(opts))
	cmd.AddCommand(newPackagesCmd(opts))
	cmd.AddCommand(newAccommodationsCmd(opts))
	cmd.AddCommand(newCustomersCmd(opts))
	cmd.AddCommand(newLiftPassCmd())
	return cmd
}

// loadConfig falls back to built-in defaults when no config file exists.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if o.configPath == "" && errors.Is(err, fs.ErrNotExist) {
			return config.Parse(nil)
		}
		return nil, err
	}
	return cfg, nil
}

type session struct {
	world      *world.World
	reconciler *reconcile.Reconciler
	report     reconcile.Report
	close      func()
}

// openSession loads and reconciles the stored state.
func (o *rootOptions) openSession(ctx context.Context) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	r, closeFn, err := bootstrap.NewReconciler(ctx, cfg)
	if err != nil {
		return nil, err
	}

	w := world.New(catalog.Default())
	report, err := r.Reconcile(ctx, w)
	if err != nil {
		closeFn()
		return nil, err
	}
	return &session{world: w, reconciler: r, report: report, close: closeFn}, nil
}
