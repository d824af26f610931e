package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/kafka"
	"github.com/Domenick1991/skiresort/internal/pricing"
	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/store"
	"github.com/Domenick1991/skiresort/internal/world"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreatePackage(ctx context.Context, input CreatePackageInput) (*PackageView, error)
	GetPackage(ctx context.Context, id string) (*PackageView, error)
	ListPackages(ctx context.Context) ([]PackageView, error)
	SetLiftPassDays(ctx context.Context, id string, days int) (*PackageView, error)
	AddLessons(ctx context.Context, id string, input AddLessonsInput) (*PackageView, error)
	Quote(ctx context.Context, id string) (pricing.Breakdown, error)
	Reload(ctx context.Context) (reconcile.Report, error)
	Save(ctx context.Context) error
}

type Cache interface {
	InvalidateAvailable(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Reconciler interface {
	Reconcile(ctx context.Context, w *world.World) (reconcile.Report, error)
	Save(ctx context.Context, w *world.World) error
}

type BookingService struct {
	world              *world.World
	reconciler         Reconciler
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type CreatePackageInput struct {
	CustomerID    int    `json:"customer_id"`
	Accommodation string `json:"accommodation"`
}

type AddLessonsInput struct {
	Level    string `json:"level"`
	Quantity int    `json:"quantity"`
}

// PackageView is a copy of a package taken under the world lock.
type PackageView struct {
	ID            string
	Customer      domain.Customer
	Accommodation domain.Accommodation
	LiftPassDays  int
	Lessons       []domain.LessonLine
	Cost          pricing.Breakdown
	Summary       string
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, eventsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(w *world.World, reconciler Reconciler, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		world:      w,
		reconciler: reconciler,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreatePackage(ctx context.Context, input CreatePackageInput) (*PackageView, error) {
	if input.Accommodation == "" {
		return nil, fmt.Errorf("%w: accommodation is required", domain.ErrInvalidArgument)
	}

	var view PackageView
	err := s.world.Update(func(st *world.State) error {
		customer, ok := st.Customers.ByID(input.CustomerID)
		if !ok {
			return fmt.Errorf("%w: customer %d", domain.ErrNotFound, input.CustomerID)
		}
		accommodation, ok := st.Catalog.FindAccommodationByName(input.Accommodation)
		if !ok {
			return fmt.Errorf("%w: accommodation %q", domain.ErrNotFound, input.Accommodation)
		}
		pkg, err := st.Packages.Create(customer, accommodation)
		if err != nil {
			return err
		}
		view = viewOf(pkg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx)
	s.publish(ctx, kafka.EventPackageCreated, &view)
	return &view, nil
}

func (s *BookingService) GetPackage(ctx context.Context, id string) (*PackageView, error) {
	var view PackageView
	err := s.world.View(func(st *world.State) error {
		pkg, ok := st.Packages.Get(id)
		if !ok {
			return fmt.Errorf("%w: package %s", domain.ErrNotFound, id)
		}
		view = viewOf(pkg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *BookingService) ListPackages(ctx context.Context) ([]PackageView, error) {
	views := make([]PackageView, 0)
	err := s.world.View(func(st *world.State) error {
		for _, pkg := range st.Packages.All() {
			views = append(views, viewOf(pkg))
		}
		return nil
	})
	return views, err
}

// SetLiftPassDays overwrites the lift-pass days; negative days become 0.
func (s *BookingService) SetLiftPassDays(ctx context.Context, id string, days int) (*PackageView, error) {
	view, err := s.mutate(id, func(_ *world.State, pkg *domain.TravelPackage) error {
		store.SetLiftPassDays(pkg, days)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, kafka.EventLiftPassUpdated, view)
	return view, nil
}

// AddLessons adds catalog lessons of the given level to the package.
func (s *BookingService) AddLessons(ctx context.Context, id string, input AddLessonsInput) (*PackageView, error) {
	level, err := domain.ParseSkiLevel(input.Level)
	if err != nil {
		return nil, err
	}

	view, err := s.mutate(id, func(st *world.State, pkg *domain.TravelPackage) error {
		lesson, ok := st.Catalog.FindLesson(level)
		if !ok {
			return fmt.Errorf("%w: no %s lessons", domain.ErrNotFound, level)
		}
		return store.AddLessons(pkg, lesson, input.Quantity)
	})
	if err != nil {
		return nil, err
	}
	if input.Quantity > 0 {
		s.publish(ctx, kafka.EventLessonsAdded, view)
	}
	return view, nil
}

func (s *BookingService) Quote(ctx context.Context, id string) (pricing.Breakdown, error) {
	view, err := s.GetPackage(ctx, id)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return view.Cost, nil
}

// Reload rebuilds the world from storage.
func (s *BookingService) Reload(ctx context.Context) (reconcile.Report, error) {
	report, err := s.reconciler.Reconcile(ctx, s.world)
	if err != nil {
		return report, fmt.Errorf("reload: %w", err)
	}
	s.invalidateAvailability(ctx)
	s.publish(ctx, kafka.EventWorldReloaded, nil)
	return report, nil
}

func (s *BookingService) Save(ctx context.Context) error {
	return s.reconciler.Save(ctx, s.world)
}

func (s *BookingService) mutate(id string, fn func(*world.State, *domain.TravelPackage) error) (*PackageView, error) {
	var view PackageView
	err := s.world.Update(func(st *world.State) error {
		pkg, ok := st.Packages.Get(id)
		if !ok {
			return fmt.Errorf("%w: package %s", domain.ErrNotFound, id)
		}
		if err := fn(st, pkg); err != nil {
			return err
		}
		view = viewOf(pkg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func viewOf(pkg *domain.TravelPackage) PackageView {
	view := PackageView{
		ID:           pkg.ID,
		LiftPassDays: pkg.LiftPassDays,
		Lessons:      append([]domain.LessonLine(nil), pkg.Lessons...),
		Cost:         pricing.Quote(pkg),
		Summary:      pricing.Describe(pkg),
	}
	if pkg.Customer != nil {
		view.Customer = *pkg.Customer
	}
	if pkg.Accommodation != nil {
		view.Accommodation = *pkg.Accommodation
	}
	return view
}

func (s *BookingService) invalidateAvailability(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAvailable(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate availability cache: %v", err)
	}
}

// publish never fails the operation that triggered it.
func (s *BookingService) publish(ctx context.Context, eventType string, view *PackageView) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.PackageEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
	key := eventType
	if view != nil {
		event.PackageID = view.ID
		event.CustomerID = view.Customer.ID
		event.CustomerName = view.Customer.Name
		event.Accommodation = view.Accommodation.Name
		event.LiftPassDays = view.LiftPassDays
		event.TotalCents = int64(view.Cost.Total)
		key = view.ID
	}

	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for package %s: %v", eventType, event.PackageID, err)
		return
	}
	if s.notificationsTopic != "" && view != nil {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for package %s: %v", eventType, event.PackageID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
