package main

import (
	"fmt"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/service/accommodations"
	"github.com/Domenick1991/skiresort/internal/service/customers"
	"github.com/spf13/cobra"
)

func newAccommodationsCmd(opts *rootOptions) *cobra.Command {
	var available bool

	c := &cobra.Command{
		Use:   "accommodations",
		Short: "List accommodations and whether they are booked",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			svc := accommodations.NewAccommodationService(s.world, nil)
			var list []domain.Accommodation
			if available {
				list, err = svc.ListAvailable(ctx)
			} else {
				list, err = svc.List(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, a := range list {
				state := "available"
				if !a.Available {
					state = "booked"
				}
				fmt.Fprintf(out, "%-26s %10s/day  %s\n", a.Name, a.PricePerDay, state)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&available, "available", false, "only show accommodations that can be booked")
	return c
}

func newCustomersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List registered customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			list, err := customers.NewCustomerService(s.world).List(ctx)
			if err != nil {
				return err
			}
			for _, c := range list {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	cmd.AddCommand(newCustomerAddCmd(opts))
	return cmd
}

func newCustomerAddCmd(opts *rootOptions) *cobra.Command {
	var name, level string

	c := &cobra.Command{
		Use:   "add",
		Short: "Register a customer and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.openSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			customer, err := customers.NewCustomerService(s.world).Add(ctx, customers.AddCustomerInput{Name: name, SkiLevel: level})
			if err != nil {
				return err
			}
			if err := s.reconciler.Save(ctx, s.world); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created customer %d\n", customer.ID)
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "customer name")
	c.Flags().StringVar(&level, "level", "", "ski level: Beginner, Intermediate or Expert")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("level")
	return c
}
