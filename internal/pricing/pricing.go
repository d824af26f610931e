// Package pricing computes travel package costs. Every function is pure.
package pricing

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/skiresort/internal/domain"
)

const (
	LiftPassDailyRate   domain.Money = 2600
	LiftPassDiscountMin              = 5
	LiftPassCap         domain.Money = 20000

	// discount is applied as a percentage so the result stays exact in cents
	liftPassDiscountPct = 90
)

// Breakdown itemizes a package total.
type Breakdown struct {
	Accommodation domain.Money `json:"accommodation_cents"`
	Lessons       domain.Money `json:"lessons_cents"`
	LiftPass      domain.Money `json:"lift_pass_cents"`
	Total         domain.Money `json:"total_cents"`
}

// LiftPassCost is 26.00 a day, 10% off from five days, capped at 200.00.
func LiftPassCost(days int) domain.Money {
	if days <= 0 {
		return 0
	}
	cost := domain.Money(days) * LiftPassDailyRate
	if days >= LiftPassDiscountMin {
		cost = cost * liftPassDiscountPct / 100
	}
	if cost > LiftPassCap {
		cost = LiftPassCap
	}
	return cost
}

// Quote itemizes pkg. Accommodation is billed per lift-pass day.
func Quote(pkg *domain.TravelPackage) Breakdown {
	var b Breakdown
	if pkg == nil {
		return b
	}
	days := max(pkg.LiftPassDays, 0)

	if pkg.Accommodation != nil {
		b.Accommodation = pkg.Accommodation.PricePerDay * domain.Money(days)
	}
	for _, line := range pkg.Lessons {
		if line.Quantity <= 0 {
			continue
		}
		b.Lessons += line.Lesson.Price * domain.Money(line.Quantity)
	}
	b.LiftPass = LiftPassCost(days)
	b.Total = b.Accommodation + b.Lessons + b.LiftPass
	return b
}

func TotalCost(pkg *domain.TravelPackage) domain.Money {
	return Quote(pkg).Total
}

// Describe renders the package the way the booking desk prints it.
func Describe(pkg *domain.TravelPackage) string {
	var sb strings.Builder
	if pkg.Customer != nil {
		fmt.Fprintf(&sb, "Customer: %s (%s)\n", pkg.Customer.Name, pkg.Customer.SkiLevel)
	}
	if pkg.Accommodation != nil {
		fmt.Fprintf(&sb, "Accommodation: %s - %s/day\n", pkg.Accommodation.Name, pkg.Accommodation.PricePerDay)
	}
	fmt.Fprintf(&sb, "Lift Pass Days: %d\n", pkg.LiftPassDays)

	if len(pkg.Lessons) == 0 {
		sb.WriteString("Lessons: 0\n")
	} else {
		sb.WriteString("Lessons:\n")
		for _, line := range pkg.Lessons {
			fmt.Fprintf(&sb, "  - %s x %d (%s each)\n", line.Lesson.Level, line.Quantity, line.Lesson.Price)
		}
	}
	fmt.Fprintf(&sb, "Total Cost: %s", TotalCost(pkg))
	return sb.String()
}
