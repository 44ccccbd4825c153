package reservationservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	startedAt = time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)
	alice     = domain.Identity{UserID: 1, Role: domain.RoleUser}
)

type mocks struct {
	users        *MockUserRepo
	reservations *MockReservationRepo
	payments     *MockPaymentRepo
	lots         *MockLotRepo
	spots        *MockSpotRegistry
	aggregator   *MockAggregator
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		users:        NewMockUserRepo(ctrl),
		reservations: NewMockReservationRepo(ctrl),
		payments:     NewMockPaymentRepo(ctrl),
		lots:         NewMockLotRepo(ctrl),
		spots:        NewMockSpotRegistry(ctrl),
		aggregator:   NewMockAggregator(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.users, m.reservations, m.payments, m.lots, m.spots, m.aggregator, txManager)
	service.now = func() time.Time { return startedAt }
	return service, m
}

func TestReserve(t *testing.T) {
	service, m := NewMock(t)
	lot := &domain.ParkingLot{ID: 3, Price: 10}

	tests := []struct {
		name          string
		identity      domain.Identity
		lotID         int
		vehicle       string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Reserved",
			identity: alice,
			lotID:    3,
			vehicle:  " ka01ab1234 ",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(nil, nil)
				m.spots.EXPECT().Occupy(gomock.Any(), 3).Return(&domain.ParkingSpot{ID: 7, LotID: 3, Status: domain.SpotOccupied}, lot, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
					assert.Equal(t, "KA01AB1234", r.VehicleNumber)
					assert.Equal(t, 7, r.SpotID)
					assert.Equal(t, 10.0, *r.Cost)
					assert.Nil(t, r.EndedAt)
					r.ID = 11
					return r, nil
				})
				lotID := 3
				m.aggregator.EXPECT().Apply(gomock.Any(), 1, "2024-03", domain.ActivityDelta{Reservations: 1, LotUsed: &lotID}).Return(nil)
			},
		},
		{
			name:     "Already parked",
			identity: alice,
			lotID:    3,
			vehicle:  "KA01AB1234",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(&domain.Reservation{ID: 10}, nil)
			},
			expectedError: domain.ErrAlreadyParked,
		},
		{
			name:     "Lot full",
			identity: alice,
			lotID:    3,
			vehicle:  "KA01AB1234",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(nil, nil)
				m.spots.EXPECT().Occupy(gomock.Any(), 3).Return(nil, nil, domain.ErrNoAvailableSpot)
			},
			expectedError: domain.ErrNoAvailableSpot,
		},
		{
			name:     "Aggregation failure rolls back",
			identity: alice,
			lotID:    3,
			vehicle:  "KA01AB1234",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(nil, nil)
				m.spots.EXPECT().Occupy(gomock.Any(), 3).Return(&domain.ParkingSpot{ID: 7}, lot, nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
					return r, nil
				})
				m.aggregator.EXPECT().Apply(gomock.Any(), 1, "2024-03", gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Invalid vehicle number",
			identity:      alice,
			lotID:         3,
			vehicle:       "   ",
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Admin cannot reserve",
			identity:      domain.Identity{UserID: 9, Role: domain.RoleAdmin},
			lotID:         3,
			vehicle:       "KA01AB1234",
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r, err := service.Reserve(context.Background(), tt.identity, tt.lotID, tt.vehicle, nil)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, r)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 11, r.ID)
			assert.Equal(t, startedAt, r.StartedAt)
		})
	}
}

func TestVacate(t *testing.T) {
	service, m := NewMock(t)
	provisional := 10.0
	active := func() *domain.Reservation {
		return &domain.Reservation{ID: 11, UserID: 1, SpotID: 7, LotID: 3, StartedAt: startedAt.Add(-90 * time.Minute), Cost: &provisional}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCost  float64
		expectedError error
	}{
		{
			name: "Billed at current price",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(active(), nil)
				m.lots.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.ParkingLot{ID: 3, Price: 12}, nil)
				m.reservations.EXPECT().Complete(gomock.Any(), 11, startedAt, 24.0).Return(nil)
				m.spots.EXPECT().Release(gomock.Any(), 7).Return(nil)
			},
			expectedCost: 24,
		},
		{
			name: "Deleted lot falls back to provisional cost",
			prepareMock: func() {
				r := active()
				r.LotID = 0
				r.SpotID = 0
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(r, nil)
				m.reservations.EXPECT().Complete(gomock.Any(), 11, startedAt, 20.0).Return(nil)
			},
			expectedCost: 20,
		},
		{
			name: "No active reservation",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNoActiveReservation,
		},
		{
			name: "Release failure",
			prepareMock: func() {
				m.users.EXPECT().LockByID(gomock.Any(), 1).Return(nil)
				m.reservations.EXPECT().FindActiveByUser(gomock.Any(), 1).Return(active(), nil)
				m.lots.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.ParkingLot{ID: 3, Price: 10}, nil)
				m.reservations.EXPECT().Complete(gomock.Any(), 11, startedAt, 20.0).Return(nil)
				m.spots.EXPECT().Release(gomock.Any(), 7).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r, err := service.Vacate(context.Background(), alice)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCost, *r.Cost)
			assert.Equal(t, startedAt, *r.EndedAt)
		})
	}
}

func TestPay(t *testing.T) {
	service, m := NewMock(t)
	endedAt := time.Date(2024, 4, 1, 0, 30, 0, 0, time.UTC)
	cost := 20.0
	completed := func(userID int) *domain.Reservation {
		return &domain.Reservation{ID: 11, UserID: userID, StartedAt: endedAt.Add(-90 * time.Minute), EndedAt: &endedAt, Cost: &cost}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Paid",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(completed(1), nil)
				m.payments.EXPECT().ExistsForReservation(gomock.Any(), 11).Return(false, nil)
				m.payments.EXPECT().Create(gomock.Any(), &domain.Payment{
					ReservationID: 11,
					UserID:        1,
					Amount:        20,
					Status:        domain.PaymentSuccess,
					PaidAt:        startedAt,
				}).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
					p.ID = 5
					return p, nil
				})
				m.aggregator.EXPECT().Apply(gomock.Any(), 1, "2024-04", domain.ActivityDelta{AmountSpent: 20}).Return(nil)
			},
		},
		{
			name: "Someone else's reservation",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(completed(2), nil)
			},
			expectedError: domain.ErrNotOwner,
		},
		{
			name: "Still active",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(&domain.Reservation{ID: 11, UserID: 1}, nil)
			},
			expectedError: domain.ErrReservationStillActive,
		},
		{
			name: "Already paid",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(completed(1), nil)
				m.payments.EXPECT().ExistsForReservation(gomock.Any(), 11).Return(true, nil)
			},
			expectedError: domain.ErrAlreadyPaid,
		},
		{
			name: "Concurrent payment hits unique index",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(completed(1), nil)
				m.payments.EXPECT().ExistsForReservation(gomock.Any(), 11).Return(false, nil)
				m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrAlreadyPaid)
			},
			expectedError: domain.ErrAlreadyPaid,
		},
		{
			name: "Unknown reservation",
			prepareMock: func() {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), 11).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			p, err := service.Pay(context.Background(), alice, 11)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, p.ID)
			assert.Equal(t, 20.0, p.Amount)
		})
	}
}

func TestList(t *testing.T) {
	service, m := NewMock(t)

	m.reservations.EXPECT().ListByUser(gomock.Any(), 1).Return(nil, nil)
	views, err := service.List(context.Background(), alice)
	assert.NoError(t, err)
	assert.Equal(t, []domain.ReservationView{}, views)

	_, err = service.List(context.Background(), domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
