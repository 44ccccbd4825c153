package lotrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

var lotRowColumns = []string{"id", "name", "price", "address", "pin_code", "number_of_spots"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	lot := &domain.ParkingLot{Name: "Central", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: 2}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO parking_lots (name, price, address, pin_code, number_of_spots)")).
		WithArgs("Central", 10.0, "MG Road", "560001", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(5))

	created, err := repo.Create(context.Background(), lot)

	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ParkingLot
	}{
		{
			name: "Lot exists",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM parking_lots WHERE id = $1")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(lotRowColumns).AddRow(1, "Central", 10.0, "MG Road", "560001", 2))
			},
			result: &domain.ParkingLot{ID: 1, Name: "Central", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: 2},
		},
		{
			name: "Lot does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM parking_lots WHERE id = $1")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM parking_lots WHERE id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Locks(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_lots WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(lotRowColumns).AddRow(1, "Central", 10.0, "MG Road", "560001", 2))
	lot, err := repo.LockForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, lot.NumberOfSpots)

	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_lots WHERE id = $1 FOR SHARE")).
		WithArgs(9).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.LockForShare(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	repo, mock := NewMock(t)
	lot := &domain.ParkingLot{ID: 1, Name: "Central", Price: 12.5, Address: "MG Road", PinCode: "560001", NumberOfSpots: 4}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_lots")).
		WithArgs("Central", 12.5, "MG Road", "560001", 4, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), lot))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_lots")).
		WithArgs("Central", 12.5, "MG Road", "560001", 4, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(context.Background(), lot), domain.ErrNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parking_lots WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM parking_lots WHERE id = $1")).
		WithArgs(1).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Delete(context.Background(), 1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListWithOccupancy(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(append(lotRowColumns, "available", "occupied")).
		AddRow(1, "Central", 10.0, "MG Road", "560001", 2, 1, 1).
		AddRow(2, "Airport", 20.0, "NH 44", "562300", 0, 0, 0)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN parking_spots s ON s.lot_id = l.id")).WillReturnRows(rows)

	lots, err := repo.ListWithOccupancy(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.LotOccupancy{
		{ParkingLot: domain.ParkingLot{ID: 1, Name: "Central", Price: 10, Address: "MG Road", PinCode: "560001", NumberOfSpots: 2}, Available: 1, Occupied: 1},
		{ParkingLot: domain.ParkingLot{ID: 2, Name: "Airport", Price: 20, Address: "NH 44", PinCode: "562300"}},
	}, lots)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Revenue(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN reservations r ON r.lot_id = l.id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "revenue"}).AddRow(1, "Central", 140.0))

	revenue, err := repo.Revenue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.LotRevenue{{LotID: 1, Name: "Central", Revenue: 140}}, revenue)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN reservations")).WillReturnError(errors.New("database error"))
	_, err = repo.Revenue(context.Background())
	assert.Error(t, err)
}
