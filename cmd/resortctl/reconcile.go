package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	var save bool

	c := &cobra.Command{
		Use:   "reconcile",
		Short: "Load stored data, repair references and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			r := s.report
			fmt.Fprintf(out, "customers: %s\n", r.Customers)
			fmt.Fprintf(out, "packages: %s\n", r.Packages)
			fmt.Fprintf(out, "seeded defaults: %t\n", r.SeededDefaults)
			fmt.Fprintf(out, "duplicate customers: %d\n", r.DuplicateCustomers)
			fmt.Fprintf(out, "orphans imported: %d\n", r.OrphansImported)
			for _, name := range r.StaleAccommodations {
				fmt.Fprintf(out, "stale accommodation: %s\n", name)
			}

			if !save {
				return nil
			}
			if err := s.reconciler.Save(ctx, s.world); err != nil {
				return err
			}
			fmt.Fprintln(out, "saved")
			return nil
		},
	}

	c.Flags().BoolVar(&save, "save", false, "write the reconciled state back to storage")
	return c
}
