package repository

import "github.com/Domenick1991/skiresort/internal/domain"

type lessonRecord struct {
	Level    domain.SkiLevel `json:"level"`
	Price    domain.Money    `json:"price_cents"`
	Quantity int             `json:"quantity"`
}

type packageRecord struct {
	ID            string               `json:"id,omitempty"`
	Customer      domain.Customer      `json:"customer"`
	Accommodation domain.Accommodation `json:"accommodation"`
	LiftPassDays  int                  `json:"lift_pass_days"`
	Lessons       []lessonRecord       `json:"lessons"`
}

func toPackageRecord(p *domain.TravelPackage) packageRecord {
	rec := packageRecord{
		ID:           p.ID,
		LiftPassDays: p.LiftPassDays,
		Lessons:      make([]lessonRecord, 0, len(p.Lessons)),
	}
	if p.Customer != nil {
		rec.Customer = *p.Customer
	}
	if p.Accommodation != nil {
		rec.Accommodation = *p.Accommodation
	}
	for _, line := range p.Lessons {
		rec.Lessons = append(rec.Lessons, lessonRecord{
			Level:    line.Lesson.Level,
			Price:    line.Lesson.Price,
			Quantity: line.Quantity,
		})
	}
	return rec
}

// toDomain gives the package its own customer and accommodation copies.
func (r packageRecord) toDomain() *domain.TravelPackage {
	customer := r.Customer
	accommodation := r.Accommodation
	pkg := &domain.TravelPackage{
		ID:            r.ID,
		Customer:      &customer,
		Accommodation: &accommodation,
		LiftPassDays:  max(r.LiftPassDays, 0),
	}
	for _, l := range r.Lessons {
		if l.Quantity <= 0 {
			continue
		}
		pkg.Lessons = append(pkg.Lessons, domain.LessonLine{
			Lesson:   domain.Lesson{Level: l.Level, Price: l.Price},
			Quantity: l.Quantity,
		})
	}
	return pkg
}

func customerRecords(customers []*domain.Customer) []domain.Customer {
	out := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
