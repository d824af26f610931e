package domain

type LessonLine struct {
	Lesson   Lesson `json:"lesson"`
	Quantity int    `json:"quantity"`
}

// TravelPackage books one accommodation for one customer. Customer and
// Accommodation are shared with the registry and the catalog.
type TravelPackage struct {
	ID            string
	Customer      *Customer
	Accommodation *Accommodation
	LiftPassDays  int
	Lessons       []LessonLine
}

// LessonCount returns the booked quantity for lesson.
func (p *TravelPackage) LessonCount(lesson Lesson) int {
	for _, line := range p.Lessons {
		if line.Lesson == lesson {
			return line.Quantity
		}
	}
	return 0
}
