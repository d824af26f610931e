package api

import (
	"context"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/pricing"
	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/service/booking"
	"github.com/Domenick1991/skiresort/internal/service/customers"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreatePackage(ctx context.Context, input booking.CreatePackageInput) (*booking.PackageView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.PackageView), args.Error(1)
}

func (m *MockBookingUseCase) GetPackage(ctx context.Context, id string) (*booking.PackageView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.PackageView), args.Error(1)
}

func (m *MockBookingUseCase) ListPackages(ctx context.Context) ([]booking.PackageView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]booking.PackageView), args.Error(1)
}

func (m *MockBookingUseCase) SetLiftPassDays(ctx context.Context, id string, days int) (*booking.PackageView, error) {
	args := m.Called(ctx, id, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.PackageView), args.Error(1)
}

func (m *MockBookingUseCase) AddLessons(ctx context.Context, id string, input booking.AddLessonsInput) (*booking.PackageView, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.PackageView), args.Error(1)
}

func (m *MockBookingUseCase) Quote(ctx context.Context, id string) (pricing.Breakdown, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pricing.Breakdown), args.Error(1)
}

func (m *MockBookingUseCase) Reload(ctx context.Context) (reconcile.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(reconcile.Report), args.Error(1)
}

func (m *MockBookingUseCase) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCustomerUseCase is a mock implementation of customers.CustomerUseCase
type MockCustomerUseCase struct {
	mock.Mock
}

func (m *MockCustomerUseCase) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerUseCase) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCustomerUseCase) Add(ctx context.Context, input customers.AddCustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockAccommodationUseCase is a mock implementation of accommodations.AccommodationUseCase
type MockAccommodationUseCase struct {
	mock.Mock
}

func (m *MockAccommodationUseCase) List(ctx context.Context) ([]domain.Accommodation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationUseCase) ListAvailable(ctx context.Context) ([]domain.Accommodation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Accommodation), args.Error(1)
}

func (m *MockAccommodationUseCase) Lessons(ctx context.Context) []domain.Lesson {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Lesson)
}

func (m *MockAccommodationUseCase) LiftPasses(ctx context.Context) []domain.LiftPass {
	args := m.Called(ctx)
	return args.Get(0).([]domain.LiftPass)
}

func (m *MockAccommodationUseCase) LiftPassCost(days int) domain.Money {
	args := m.Called(days)
	return args.Get(0).(domain.Money)
}
