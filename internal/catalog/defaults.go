package catalog

import "github.com/Domenick1991/skiresort/internal/domain"

func DefaultAccommodations() []domain.Accommodation {
	return []domain.Accommodation{
		{Name: "Alpine Ridge Lodge", PricePerDay: domain.Dollars(100), Available: true},
		{Name: "Buller Basin Retreat", PricePerDay: domain.Dollars(80), Available: true},
		{Name: "Stirling Summit Chalet", PricePerDay: domain.Dollars(150), Available: true},
		{Name: "Frosty Spur Lodge", PricePerDay: domain.Dollars(180), Available: true},
		{Name: "Snowgums Hideaway", PricePerDay: domain.Dollars(120), Available: true},
		{Name: "Whitehorse Peaks Chalet", PricePerDay: domain.Dollars(110), Available: true},
		{Name: "Timberline Creek Lodge", PricePerDay: domain.Dollars(200), Available: true},
		{Name: "Bluff View Ski Lodge", PricePerDay: domain.Dollars(220), Available: true},
		{Name: "Koala Ridge Retreat", PricePerDay: domain.Dollars(170), Available: true},
		{Name: "Buller Snowfields Cabins", PricePerDay: domain.Dollars(130), Available: true},
		{Name: "Crystal Valley Lodge", PricePerDay: domain.Dollars(800), Available: true},
		{Name: "Bogong Heights Chalets", PricePerDay: domain.Dollars(160), Available: true},
	}
}

func DefaultLessons() []domain.Lesson {
	return []domain.Lesson{
		{Level: domain.SkiLevelBeginner, Price: domain.Dollars(25)},
		{Level: domain.SkiLevelIntermediate, Price: domain.Dollars(20)},
		{Level: domain.SkiLevelExpert, Price: domain.Dollars(15)},
	}
}

func DefaultLiftPasses() []domain.LiftPass {
	return []domain.LiftPass{
		{Name: "1 Day Pass", Cost: domain.Dollars(120)},
		{Name: "3 Day Pass", Cost: domain.Dollars(300)},
	}
}

// DefaultCustomers seeds the registry on a cold start.
func DefaultCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, Name: "DJ", SkiLevel: domain.SkiLevelBeginner},
		{ID: 2, Name: "Justin", SkiLevel: domain.SkiLevelIntermediate},
		{ID: 3, Name: "Erica", SkiLevel: domain.SkiLevelExpert},
	}
}
