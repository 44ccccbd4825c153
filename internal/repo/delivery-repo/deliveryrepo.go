package deliveryrepo

import (
	"context"

	"github.com/GlebRadaev/parking/internal/pg"
	"go.uber.org/zap"
)

// Repository records which scheduled mails a user already received, keyed
// by mail kind and period (a month or a day).
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) ListDelivered(ctx context.Context, kind, period string) ([]int, error) {
	query := "SELECT user_id FROM mail_deliveries WHERE kind = $1 AND period = $2"
	rows, err := repo.db.Query(ctx, query, kind, period)
	if err != nil {
		zap.L().Error("can't list deliveries", zap.String("kind", kind), zap.String("period", period), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			zap.L().Error("can't scan delivery", zap.Error(err))
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, rows.Err()
}

func (repo *Repository) MarkDelivered(ctx context.Context, kind string, userID int, period string) error {
	query := `
		INSERT INTO mail_deliveries (kind, user_id, period)
		VALUES ($1, $2, $3)
		ON CONFLICT (kind, period, user_id) DO NOTHING
	`
	if _, err := repo.db.Exec(ctx, query, kind, userID, period); err != nil {
		zap.L().Error("can't record delivery",
			zap.String("kind", kind), zap.Int("user_id", userID), zap.String("period", period), zap.Error(err))
		return err
	}
	return nil
}
