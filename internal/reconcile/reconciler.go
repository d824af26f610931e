// Package reconcile rebuilds the resort state from the separately persisted
// customer and package collections.
package reconcile

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/repository"
	"github.com/Domenick1991/skiresort/internal/world"
)

type Report struct {
	Customers           LoadOutcome
	Packages            LoadOutcome
	SeededDefaults      bool
	DuplicateCustomers  int
	OrphansImported     int
	StaleAccommodations []string
}

type Reconciler struct {
	customers repository.CustomerRepository
	packages  repository.PackageRepository
	strict    bool
}

type Option func(*Reconciler)

// WithStrictLoad makes a corrupt collection fail Reconcile instead of being
// read as empty.
func WithStrictLoad(strict bool) Option {
	return func(r *Reconciler) {
		r.strict = strict
	}
}

func New(customers repository.CustomerRepository, packages repository.PackageRepository, opts ...Option) *Reconciler {
	r := &Reconciler{customers: customers, packages: packages}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile replaces the state of w with what storage holds.
//
// Steps run in a fixed order: reset availability, load customers (or seed the
// defaults), load packages, import orphan customers, then re-derive
// availability from the packages.
func (r *Reconciler) Reconcile(ctx context.Context, w *world.World) (Report, error) {
	var report Report

	loadedCustomers, err := r.customers.LoadCustomers(ctx)
	report.Customers = outcomeOf(len(loadedCustomers), err)
	if err != nil {
		if r.strict {
			return report, fmt.Errorf("load customers: %w", err)
		}
		log.Printf("reconcile: customers unreadable, treating as empty: %v", err)
		loadedCustomers = nil
	}

	loadedPackages, err := r.packages.LoadPackages(ctx)
	report.Packages = outcomeOf(len(loadedPackages), err)
	if err != nil {
		if r.strict {
			return report, fmt.Errorf("load packages: %w", err)
		}
		log.Printf("reconcile: packages unreadable, treating as empty: %v", err)
		loadedPackages = nil
	}

	_ = w.Update(func(s *world.State) error {
		rebuild(s, loadedCustomers, loadedPackages, &report)
		return nil
	})

	log.Printf("reconcile: customers=%s packages=%s seeded=%t orphans=%d stale=%d",
		report.Customers, report.Packages, report.SeededDefaults, report.OrphansImported, len(report.StaleAccommodations))
	return report, nil
}

func rebuild(s *world.State, customers []domain.Customer, packages []*domain.TravelPackage, report *Report) {
	s.Catalog.ResetAvailability()

	s.Customers.Reset()
	s.Packages.Reset()

	if len(customers) == 0 {
		customers = catalog.DefaultCustomers()
		report.SeededDefaults = true
	}
	for _, c := range customers {
		c := c
		if err := s.Customers.Add(&c); err != nil {
			log.Printf("reconcile: skipping stored customer %q: %v", c.Name, err)
			report.DuplicateCustomers++
		}
	}

	for _, pkg := range packages {
		if pkg == nil {
			continue
		}
		s.Packages.Restore(pkg)
	}

	report.OrphansImported = importOrphans(s)
	report.StaleAccommodations = markBooked(s)
}

// importOrphans registers package customers the registry does not know.
// One forward pass: an orphan registered here is visible to the checks for
// later packages.
func importOrphans(s *world.State) int {
	imported := 0
	for _, pkg := range s.Packages.All() {
		if pkg.Customer == nil {
			continue
		}
		if known, ok := s.Customers.Find(pkg.Customer); ok {
			// an id-only match is a different person; keep the package's copy
			if known.SameProfile(pkg.Customer) {
				pkg.Customer = known
			}
			continue
		}
		// Find matched neither the id nor name+level, so Add cannot collide
		_ = s.Customers.Add(pkg.Customer)
		imported++
	}
	return imported
}

// markBooked marks every packaged accommodation unavailable, in the catalog
// and on the package's own copy, and returns the names the catalog no longer
// has.
func markBooked(s *world.State) []string {
	var stale []string
	for _, pkg := range s.Packages.All() {
		if pkg.Accommodation == nil {
			continue
		}
		own := pkg.Accommodation
		own.Available = false

		master, ok := s.Catalog.FindAccommodationByName(own.Name)
		if !ok {
			stale = append(stale, own.Name)
			continue
		}
		master.Available = false
		pkg.Accommodation = master
	}
	return stale
}

// Save writes customers then packages. The state stays read-locked until
// both writes finish.
func (r *Reconciler) Save(ctx context.Context, w *world.World) error {
	return w.View(func(s *world.State) error {
		if err := r.customers.SaveCustomers(ctx, s.Customers.All()); err != nil {
			return fmt.Errorf("save customers: %w", err)
		}
		if err := r.packages.SavePackages(ctx, s.Packages.All()); err != nil {
			return fmt.Errorf("save packages: %w", err)
		}
		return nil
	})
}
