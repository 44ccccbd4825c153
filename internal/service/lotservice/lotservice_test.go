package lotservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	admin = domain.Identity{UserID: 1, Role: domain.RoleAdmin}
	user  = domain.Identity{UserID: 2, Role: domain.RoleUser}
)

func NewMock(t *testing.T) (*Service, *MockLotRepo, *MockSpotRepo) {
	ctrl := gomock.NewController(t)
	lotRepo := NewMockLotRepo(ctrl)
	spotRepo := NewMockSpotRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	return New(lotRepo, spotRepo, txManager), lotRepo, spotRepo
}

func newLot() *domain.ParkingLot {
	return &domain.ParkingLot{ID: 1, Name: "Central", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: 2}
}

func TestCreateLot(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	tests := []struct {
		name          string
		identity      domain.Identity
		lot           *domain.ParkingLot
		prepareMock   func()
		expectedSpots int
		expectedError error
	}{
		{
			name:     "Lot with two spots",
			identity: admin,
			lot:      &domain.ParkingLot{Name: " Central ", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: 2},
			prepareMock: func() {
				lotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, lot *domain.ParkingLot) (*domain.ParkingLot, error) {
					assert.Equal(t, "Central", lot.Name)
					lot.ID = 1
					return lot, nil
				})
				spotRepo.EXPECT().CreateBatch(gomock.Any(), 1, 2).Return([]domain.ParkingSpot{
					{ID: 1, LotID: 1, Status: domain.SpotAvailable},
					{ID: 2, LotID: 1, Status: domain.SpotAvailable},
				}, nil)
			},
			expectedSpots: 2,
		},
		{
			name:          "Regular user is forbidden",
			identity:      user,
			lot:           newLot(),
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "Negative spot count",
			identity:      admin,
			lot:           &domain.ParkingLot{Name: "Central", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: -1},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:          "Invalid pin code",
			identity:      admin,
			lot:           &domain.ParkingLot{Name: "Central", Price: 10, Address: "MG Road", PinCode: "abc", NumberOfSpots: 1},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "Spot batch failure",
			identity: admin,
			lot:      newLot(),
			prepareMock: func() {
				lotRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, lot *domain.ParkingLot) (*domain.ParkingLot, error) {
					return lot, nil
				})
				spotRepo.EXPECT().CreateBatch(gomock.Any(), 1, 2).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			lot, spots, err := service.CreateLot(context.Background(), tt.identity, tt.lot)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, lot)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, lot.ID)
			assert.Len(t, spots, tt.expectedSpots)
		})
	}
}

func TestResizeLot(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	tests := []struct {
		name          string
		newCount      int
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Grow adds available spots",
			newCount: 5,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(1, 1, nil)
				spotRepo.EXPECT().CreateBatch(gomock.Any(), 1, 3).Return(make([]domain.ParkingSpot, 3), nil)
				lotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, lot *domain.ParkingLot) error {
					assert.Equal(t, 5, lot.NumberOfSpots)
					return nil
				})
			},
		},
		{
			name:     "Shrink removes available spots",
			newCount: 1,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.ParkingLot{ID: 1, NumberOfSpots: 3}, nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(2, 1, nil)
				spotRepo.EXPECT().DeleteAvailable(gomock.Any(), 1, 2).Return(2, nil)
				lotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Same size touches no spots",
			newCount: 2,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(1, 1, nil)
				lotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "Below occupancy floor",
			newCount: 1,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(0, 2, nil)
			},
			expectedError: domain.ErrBelowOccupancyFloor,
		},
		{
			name:     "Spots taken while shrinking",
			newCount: 1,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(&domain.ParkingLot{ID: 1, NumberOfSpots: 3}, nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(2, 1, nil)
				spotRepo.EXPECT().DeleteAvailable(gomock.Any(), 1, 2).Return(1, nil)
			},
			expectedError: domain.ErrInsufficientAvailableSpots,
		},
		{
			name:     "Unknown lot",
			newCount: 1,
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Negative count",
			newCount:      -1,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ResizeLot(context.Background(), admin, 1, tt.newCount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateLot(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	lot := newLot()
	lot.Price = 15
	lot.NumberOfSpots = 3
	lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
	spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(2, 0, nil)
	spotRepo.EXPECT().CreateBatch(gomock.Any(), 1, 1).Return(make([]domain.ParkingSpot, 1), nil)
	lotRepo.EXPECT().Update(gomock.Any(), lot).Return(nil)

	updated, err := service.UpdateLot(context.Background(), admin, lot)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, updated.Price)

	_, err = service.UpdateLot(context.Background(), user, newLot())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateLot_KeepSpotCount(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	current := newLot()
	current.NumberOfSpots = 4
	lot := newLot()
	lot.Name = "Renamed"
	lot.NumberOfSpots = KeepSpotCount

	lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(current, nil)
	spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(3, 1, nil)
	lotRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *domain.ParkingLot) error {
		assert.Equal(t, 4, l.NumberOfSpots)
		assert.Equal(t, "Renamed", l.Name)
		return nil
	})

	updated, err := service.UpdateLot(context.Background(), admin, lot)
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.NumberOfSpots)
}

func TestDeleteLot(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Empty lot is deleted",
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(2, 0, nil)
				spotRepo.EXPECT().DeleteByLot(gomock.Any(), 1).Return(2, nil)
				lotRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name: "Occupied spot blocks deletion",
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(newLot(), nil)
				spotRepo.EXPECT().CountByStatus(gomock.Any(), 1).Return(1, 1, nil)
			},
			expectedError: domain.ErrLotHasOccupiedSpots,
		},
		{
			name: "Unknown lot",
			prepareMock: func() {
				lotRepo.EXPECT().LockForUpdate(gomock.Any(), 1).Return(nil, domain.ErrNotFound)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.DeleteLot(context.Background(), admin, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOccupyAndRelease(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	lotRepo.EXPECT().LockForShare(gomock.Any(), 1).Return(newLot(), nil).Times(2)
	gomock.InOrder(
		spotRepo.EXPECT().ClaimAvailable(gomock.Any(), 1).Return(&domain.ParkingSpot{ID: 1, LotID: 1, Status: domain.SpotOccupied}, nil),
		spotRepo.EXPECT().ClaimAvailable(gomock.Any(), 1).Return(nil, nil),
	)

	spot, lot, err := service.Occupy(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, spot.ID)
	assert.Equal(t, 10.0, lot.Price)

	_, _, err = service.Occupy(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNoAvailableSpot)

	spotRepo.EXPECT().Release(gomock.Any(), 1).Return(true, nil)
	assert.NoError(t, service.Release(context.Background(), 1))

	spotRepo.EXPECT().Release(gomock.Any(), 1).Return(false, nil)
	assert.NoError(t, service.Release(context.Background(), 1))

	lotRepo.EXPECT().LockForShare(gomock.Any(), 9).Return(nil, domain.ErrNotFound)
	_, _, err = service.Occupy(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListLots(t *testing.T) {
	service, lotRepo, _ := NewMock(t)

	lotRepo.EXPECT().ListWithOccupancy(gomock.Any()).Return(nil, nil)
	lots, err := service.ListLots(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, []domain.LotOccupancy{}, lots)

	_, err = service.ListLots(context.Background(), domain.Identity{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSpotDetails(t *testing.T) {
	service, lotRepo, spotRepo := NewMock(t)

	lotRepo.EXPECT().FindByID(gomock.Any(), 1).Return(newLot(), nil)
	spotRepo.EXPECT().ListDetails(gomock.Any(), 1).Return([]domain.SpotDetail{{ID: 1, Status: domain.SpotAvailable}}, nil)
	spots, err := service.SpotDetails(context.Background(), admin, 1)
	assert.NoError(t, err)
	assert.Len(t, spots, 1)

	lotRepo.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
	_, err = service.SpotDetails(context.Background(), admin, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.SpotDetails(context.Background(), user, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
