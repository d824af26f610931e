package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/skiresort/internal/catalog"
	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/kafka"
	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateAvailable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Reconcile(ctx context.Context, w *world.World) (reconcile.Report, error) {
	args := m.Called(ctx, w)
	return args.Get(0).(reconcile.Report), args.Error(1)
}

func (m *MockReconciler) Save(ctx context.Context, w *world.World) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func seededWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New(catalog.Default())
	require.NoError(t, w.Update(func(st *world.State) error {
		for _, c := range catalog.DefaultCustomers() {
			c := c
			if err := st.Customers.Add(&c); err != nil {
				return err
			}
		}
		return nil
	}))
	return w
}

func isAvailable(t *testing.T, w *world.World, name string) bool {
	t.Helper()
	var available bool
	require.NoError(t, w.View(func(st *world.State) error {
		a, ok := st.Catalog.FindAccommodationByName(name)
		require.True(t, ok)
		available = a.Available
		return nil
	}))
	return available
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e kafka.PackageEvent) bool { return e.Type == eventType })
}

func TestBookingService_CreatePackage_Success(t *testing.T) {
	w := seededWorld(t)
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := NewBookingService(w, &MockReconciler{},
		WithCache(mockCache),
		WithProducer(mockProducer, "package_events"),
		WithNotificationsTopic("notifications"),
	)
	ctx := context.Background()

	mockCache.On("InvalidateAvailable", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "package_events", mock.Anything, eventOfType(kafka.EventPackageCreated)).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, eventOfType(kafka.EventPackageCreated)).Return(nil).Once()

	view, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 2, Accommodation: "koala ridge retreat"})

	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Justin", view.Customer.Name)
	assert.Equal(t, "Koala Ridge Retreat", view.Accommodation.Name)
	assert.False(t, view.Accommodation.Available)
	assert.Equal(t, domain.Money(0), view.Cost.Total)
	assert.False(t, isAvailable(t, w, "Koala Ridge Retreat"))
	assert.True(t, isAvailable(t, w, "Alpine Ridge Lodge"))

	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreatePackage_Errors(t *testing.T) {
	w := seededWorld(t)
	service := NewBookingService(w, &MockReconciler{})
	ctx := context.Background()

	_, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 1, Accommodation: "Frosty Spur Lodge"})
	require.NoError(t, err)

	testCases := []struct {
		name    string
		input   CreatePackageInput
		wantErr error
	}{
		{name: "Already booked", input: CreatePackageInput{CustomerID: 2, Accommodation: "Frosty Spur Lodge"}, wantErr: domain.ErrAccommodationUnavailable},
		{name: "Unknown customer", input: CreatePackageInput{CustomerID: 99, Accommodation: "Snowgums Hideaway"}, wantErr: domain.ErrNotFound},
		{name: "Unknown accommodation", input: CreatePackageInput{CustomerID: 1, Accommodation: "Nowhere Inn"}, wantErr: domain.ErrNotFound},
		{name: "Missing accommodation", input: CreatePackageInput{CustomerID: 1}, wantErr: domain.ErrInvalidArgument},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := service.CreatePackage(ctx, tc.input)
			assert.Nil(t, view)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), err.Error())
		})
	}

	list, err := service.ListPackages(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.True(t, isAvailable(t, w, "Snowgums Hideaway"))
}

func TestBookingService_CreatePackage_PublishFailureIsNotFatal(t *testing.T) {
	mockProducer := &MockProducer{}
	service := NewBookingService(seededWorld(t), &MockReconciler{}, WithProducer(mockProducer, "package_events"))
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "package_events", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	view, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 3, Accommodation: "Crystal Valley Lodge"})

	require.NoError(t, err)
	assert.NotNil(t, view)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_SetLiftPassDays(t *testing.T) {
	service := NewBookingService(seededWorld(t), &MockReconciler{})
	ctx := context.Background()

	created, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 1, Accommodation: "Alpine Ridge Lodge"})
	require.NoError(t, err)

	view, err := service.SetLiftPassDays(ctx, created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.LiftPassDays)
	// 100*5 + 117
	assert.Equal(t, domain.Dollars(617), view.Cost.Total)

	view, err = service.SetLiftPassDays(ctx, created.ID, -2)
	require.NoError(t, err)
	assert.Equal(t, 0, view.LiftPassDays)

	_, err = service.SetLiftPassDays(ctx, "missing", 3)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBookingService_AddLessons(t *testing.T) {
	mockProducer := &MockProducer{}
	service := NewBookingService(seededWorld(t), &MockReconciler{}, WithProducer(mockProducer, "package_events"))
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "package_events", mock.Anything, eventOfType(kafka.EventPackageCreated)).Return(nil).Once()
	mockProducer.On("Publish", ctx, "package_events", mock.Anything, eventOfType(kafka.EventLessonsAdded)).Return(nil).Twice()

	created, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 1, Accommodation: "Alpine Ridge Lodge"})
	require.NoError(t, err)

	_, err = service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "beginner", Quantity: 2})
	require.NoError(t, err)
	view, err := service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "Beginner", Quantity: 1})
	require.NoError(t, err)

	beginner := domain.Lesson{Level: domain.SkiLevelBeginner, Price: domain.Dollars(25)}
	assert.Equal(t, []domain.LessonLine{{Lesson: beginner, Quantity: 3}}, view.Lessons)
	assert.Equal(t, domain.Dollars(75), view.Cost.Lessons)

	// zero quantity is a no-op and publishes nothing
	view, err = service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "Beginner", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Lessons[0].Quantity)

	mockProducer.AssertExpectations(t)
}

func TestBookingService_AddLessons_Errors(t *testing.T) {
	service := NewBookingService(seededWorld(t), &MockReconciler{})
	ctx := context.Background()

	created, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 1, Accommodation: "Alpine Ridge Lodge"})
	require.NoError(t, err)

	_, err = service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "Expert", Quantity: 2})
	assert.True(t, errors.Is(err, domain.ErrLevelMismatch))

	_, err = service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "Wizard", Quantity: 2})
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))

	_, err = service.AddLessons(ctx, "missing", AddLessonsInput{Level: "Beginner", Quantity: 2})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	view, err := service.GetPackage(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Lessons)
}

func TestBookingService_Quote(t *testing.T) {
	service := NewBookingService(seededWorld(t), &MockReconciler{})
	ctx := context.Background()

	created, err := service.CreatePackage(ctx, CreatePackageInput{CustomerID: 3, Accommodation: "Buller Basin Retreat"})
	require.NoError(t, err)
	_, err = service.SetLiftPassDays(ctx, created.ID, 10)
	require.NoError(t, err)
	_, err = service.AddLessons(ctx, created.ID, AddLessonsInput{Level: "Expert", Quantity: 4})
	require.NoError(t, err)

	first, err := service.Quote(ctx, created.ID)
	require.NoError(t, err)
	second, err := service.Quote(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.Dollars(800), first.Accommodation)
	assert.Equal(t, domain.Dollars(60), first.Lessons)
	assert.Equal(t, domain.Dollars(200), first.LiftPass)
	assert.Equal(t, domain.Dollars(1060), first.Total)

	_, err = service.Quote(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBookingService_Reload(t *testing.T) {
	w := seededWorld(t)
	mockReconciler := &MockReconciler{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := NewBookingService(w, mockReconciler, WithCache(mockCache), WithProducer(mockProducer, "package_events"))
	ctx := context.Background()

	report := reconcile.Report{OrphansImported: 2}
	mockReconciler.On("Reconcile", ctx, w).Return(report, nil).Once()
	mockCache.On("InvalidateAvailable", ctx).Return(errors.New("redis down")).Once()
	mockProducer.On("Publish", ctx, "package_events", kafka.EventWorldReloaded, eventOfType(kafka.EventWorldReloaded)).Return(nil).Once()

	got, err := service.Reload(ctx)

	require.NoError(t, err)
	assert.Equal(t, report, got)
	mockReconciler.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Reload_Error(t *testing.T) {
	w := seededWorld(t)
	mockReconciler := &MockReconciler{}
	mockCache := &MockCache{}
	service := NewBookingService(w, mockReconciler, WithCache(mockCache))
	ctx := context.Background()

	mockReconciler.On("Reconcile", ctx, w).Return(reconcile.Report{}, domain.ErrPersistenceCorrupt).Once()

	_, err := service.Reload(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPersistenceCorrupt))
	mockCache.AssertNotCalled(t, "InvalidateAvailable", mock.Anything)
}

func TestBookingService_Save(t *testing.T) {
	w := seededWorld(t)
	mockReconciler := &MockReconciler{}
	service := NewBookingService(w, mockReconciler)
	ctx := context.Background()

	mockReconciler.On("Save", ctx, w).Return(nil).Once()

	require.NoError(t, service.Save(ctx))
	mockReconciler.AssertExpectations(t)
}
