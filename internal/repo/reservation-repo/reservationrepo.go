package reservationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const reservationColumns = `id, user_id, COALESCE(spot_id, 0), COALESCE(lot_id, 0), vehicle_number,
	started_at, ended_at, cost, remarks`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanReservation(row pgx.Row, r *domain.Reservation) error {
	return row.Scan(&r.ID, &r.UserID, &r.SpotID, &r.LotID, &r.VehicleNumber, &r.StartedAt, &r.EndedAt, &r.Cost, &r.Remarks)
}

func (repo *Repository) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	query := `
		INSERT INTO reservations (user_id, spot_id, lot_id, vehicle_number, started_at, cost, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, r.UserID, r.SpotID, r.LotID, r.VehicleNumber, r.StartedAt, r.Cost, r.Remarks).Scan(&r.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyParked
		}
		zap.L().Error("can't save reservation", zap.Error(err))
		return nil, err
	}
	return r, nil
}

// FindActiveByUser returns the user's open reservation or nil.
func (repo *Repository) FindActiveByUser(ctx context.Context, userID int) (*domain.Reservation, error) {
	var r domain.Reservation
	query := "SELECT " + reservationColumns + " FROM reservations WHERE user_id = $1 AND ended_at IS NULL"
	if err := scanReservation(repo.db.QueryRow(ctx, query, userID), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find active reservation", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &r, nil
}

func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.Reservation, error) {
	var r domain.Reservation
	query := "SELECT " + reservationColumns + " FROM reservations WHERE id = $1 FOR UPDATE"
	if err := scanReservation(repo.db.QueryRow(ctx, query, id), &r); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't lock reservation", zap.Int("reservation_id", id), zap.Error(err))
		return nil, err
	}
	return &r, nil
}

// Complete closes an open reservation with its final cost.
func (repo *Repository) Complete(ctx context.Context, id int, endedAt time.Time, cost float64) error {
	tag, err := repo.db.Exec(ctx,
		"UPDATE reservations SET ended_at = $1, cost = $2 WHERE id = $3 AND ended_at IS NULL",
		endedAt, cost, id)
	if err != nil {
		zap.L().Error("can't complete reservation", zap.Int("reservation_id", id), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoActiveReservation
	}
	return nil
}

// ListByUser returns the user's reservations newest first.
func (repo *Repository) ListByUser(ctx context.Context, userID int) ([]domain.ReservationView, error) {
	query := `
		SELECT r.id, r.user_id, COALESCE(r.spot_id, 0), COALESCE(r.lot_id, 0), r.vehicle_number,
			r.started_at, r.ended_at, r.cost, r.remarks, l.name,
			EXISTS (SELECT 1 FROM payments p WHERE p.reservation_id = r.id AND p.status = 'Success') AS paid
		FROM reservations r
		LEFT JOIN parking_lots l ON l.id = r.lot_id
		WHERE r.user_id = $1
		ORDER BY r.started_at DESC, r.id DESC
	`
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list reservations", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var views []domain.ReservationView
	for rows.Next() {
		var v domain.ReservationView
		err := rows.Scan(&v.ID, &v.UserID, &v.SpotID, &v.LotID, &v.VehicleNumber,
			&v.StartedAt, &v.EndedAt, &v.Cost, &v.Remarks, &v.LotName, &v.Paid)
		if err != nil {
			zap.L().Error("can't scan reservation row", zap.Error(err))
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListActiveSessions returns every open reservation with its owner.
func (repo *Repository) ListActiveSessions(ctx context.Context) ([]domain.ActiveSession, error) {
	query := `
		SELECT u.id, u.email, u.uname, r.vehicle_number, COALESCE(r.spot_id, 0), r.started_at
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		WHERE r.ended_at IS NULL
		ORDER BY u.id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list active sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.ActiveSession
	for rows.Next() {
		var s domain.ActiveSession
		if err := rows.Scan(&s.UserID, &s.Email, &s.Uname, &s.VehicleNumber, &s.SpotID, &s.StartedAt); err != nil {
			zap.L().Error("can't scan active session row", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
