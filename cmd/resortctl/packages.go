package main

import (
	"fmt"
	"strconv"

	"github.com/Domenick1991/skiresort/internal/pricing"
	"github.com/Domenick1991/skiresort/internal/world"
	"github.com/spf13/cobra"
)

func newPackagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "Print every stored travel package with its cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			return s.world.View(func(st *world.State) error {
				if st.Packages.Len() == 0 {
					fmt.Fprintln(out, "no packages")
					return nil
				}
				for _, pkg := range st.Packages.All() {
					fmt.Fprintf(out, "[%s]\n%s\n\n", pkg.ID, pricing.Describe(pkg))
				}
				return nil
			})
		},
	}
}

func newLiftPassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "liftpass <days>",
		Short: "Print the lift pass cost for a number of days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid days %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), pricing.LiftPassCost(days))
			return nil
		},
	}
}
