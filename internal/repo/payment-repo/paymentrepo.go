package paymentrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) ExistsForReservation(ctx context.Context, reservationID int) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM payments WHERE reservation_id = $1)", reservationID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check payment", zap.Int("reservation_id", reservationID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

// Create stores the payment. A second payment for the same reservation
// fails with domain.ErrAlreadyPaid.
func (repo *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (reservation_id, user_id, amount, status, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, p.ReservationID, p.UserID, p.Amount, p.Status, p.PaidAt).Scan(&p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyPaid
		}
		zap.L().Error("can't save payment", zap.Int("reservation_id", p.ReservationID), zap.Error(err))
		return nil, err
	}
	return p, nil
}
