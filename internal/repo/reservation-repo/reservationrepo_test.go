package reservationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

var reservationRowColumns = []string{"id", "user_id", "spot_id", "lot_id", "vehicle_number", "started_at", "ended_at", "cost", "remarks"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	cost := 10.0
	r := &domain.Reservation{UserID: 1, SpotID: 2, LotID: 3, VehicleNumber: "KA01AB1234", StartedAt: started, Cost: &cost}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(1, 2, 3, "KA01AB1234", started, &cost, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

	created, err := repo.Create(context.Background(), r)

	assert.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SecondActiveReservation(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r := &domain.Reservation{UserID: 1, SpotID: 4, LotID: 3, VehicleNumber: "KA01AB1234", StartedAt: started}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs(1, 4, 3, "KA01AB1234", started, (*float64)(nil), (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reservations_user_active_idx"})

	created, err := repo.Create(context.Background(), r)

	assert.ErrorIs(t, err, domain.ErrAlreadyParked)
	assert.Nil(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveByUser(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Reservation
	}{
		{
			name: "Active reservation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND ended_at IS NULL")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(reservationRowColumns).
						AddRow(5, 1, 2, 3, "KA01AB1234", started, (*time.Time)(nil), (*float64)(nil), (*string)(nil)))
			},
			result: &domain.Reservation{ID: 5, UserID: 1, SpotID: 2, LotID: 3, VehicleNumber: "KA01AB1234", StartedAt: started},
		},
		{
			name: "No active reservation",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND ended_at IS NULL")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND ended_at IS NULL")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindActiveByUser(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ended := started.Add(90 * time.Minute)
	cost := 20.0

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows(reservationRowColumns).
			AddRow(5, 1, 0, 3, "KA01AB1234", started, &ended, &cost, (*string)(nil)))
	r, err := repo.FindByIDForUpdate(context.Background(), 5)
	assert.NoError(t, err)
	assert.False(t, r.IsActive())
	assert.Equal(t, 20.0, *r.Cost)
	assert.Equal(t, 0, r.SpotID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1 FOR UPDATE")).
		WithArgs(6).
		WillReturnError(pgx.ErrNoRows)
	_, err = repo.FindByIDForUpdate(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Complete(t *testing.T) {
	repo, mock := NewMock(t)
	ended := time.Date(2024, 3, 1, 11, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET ended_at = $1, cost = $2 WHERE id = $3 AND ended_at IS NULL")).
		WithArgs(ended, 20.0, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Complete(context.Background(), 5, ended, 20.0))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET ended_at = $1")).
		WithArgs(ended, 20.0, 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Complete(context.Background(), 5, ended, 20.0), domain.ErrNoActiveReservation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ended := started.Add(time.Hour)
	cost := 10.0
	lotName := "Central"

	columns := append(append([]string{}, reservationRowColumns...), "name", "paid")
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN parking_lots l ON l.id = r.lot_id")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(6, 1, 2, 3, "KA01AB1234", started.Add(2*time.Hour), (*time.Time)(nil), &cost, (*string)(nil), &lotName, false).
			AddRow(5, 1, 2, 3, "KA01AB1234", started, &ended, &cost, (*string)(nil), &lotName, true))

	views, err := repo.ListByUser(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, domain.ReservationActive, views[0].Status())
	assert.Equal(t, domain.ReservationCompleted, views[1].Status())
	assert.True(t, views[1].Paid)
	assert.Equal(t, "Central", *views[1].LotName)
}

func TestRepository_ListActiveSessions(t *testing.T) {
	repo, mock := NewMock(t)
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.ended_at IS NULL")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "uname", "vehicle_number", "spot_id", "started_at"}).
			AddRow(1, "user@example.com", "user", "KA01AB1234", 2, started))

	sessions, err := repo.ListActiveSessions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.ActiveSession{
		{UserID: 1, Email: "user@example.com", Uname: "user", VehicleNumber: "KA01AB1234", SpotID: 2, StartedAt: started},
	}, sessions)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.ended_at IS NULL")).WillReturnError(errors.New("database error"))
	_, err = repo.ListActiveSessions(context.Background())
	assert.Error(t, err)
}
