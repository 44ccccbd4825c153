package activityrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const activityColumns = "user_id, month, total_reservations, total_spent, most_used_lot_id, updated_at"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanReport(row pgx.Row, a *domain.ActivityReport) error {
	return row.Scan(&a.UserID, &a.Month, &a.TotalReservations, &a.TotalSpent, &a.MostUsedLotID, &a.UpdatedAt)
}

// Upsert adds the increments of delta to the (user, month) row, creating it
// when missing. A non-nil MostUsedLotID overwrites the stored one. The row
// lock taken by ON CONFLICT serializes concurrent updates of one key.
func (repo *Repository) Upsert(ctx context.Context, delta *domain.ActivityReport) (*domain.ActivityReport, error) {
	query := `
		INSERT INTO activity_reports (user_id, month, total_reservations, total_spent, most_used_lot_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, month) DO UPDATE SET
			total_reservations = activity_reports.total_reservations + EXCLUDED.total_reservations,
			total_spent = activity_reports.total_spent + EXCLUDED.total_spent,
			most_used_lot_id = COALESCE(EXCLUDED.most_used_lot_id, activity_reports.most_used_lot_id),
			updated_at = EXCLUDED.updated_at
		RETURNING ` + activityColumns
	var report domain.ActivityReport
	err := scanReport(repo.db.QueryRow(ctx, query,
		delta.UserID, delta.Month, delta.TotalReservations, delta.TotalSpent, delta.MostUsedLotID, delta.UpdatedAt), &report)
	if err != nil {
		zap.L().Error("can't upsert activity report",
			zap.Int("user_id", delta.UserID), zap.String("month", delta.Month), zap.Error(err))
		return nil, err
	}
	return &report, nil
}

func (repo *Repository) FindByUserMonth(ctx context.Context, userID int, month string) (*domain.ActivityReport, error) {
	var report domain.ActivityReport
	query := "SELECT " + activityColumns + " FROM activity_reports WHERE user_id = $1 AND month = $2"
	if err := scanReport(repo.db.QueryRow(ctx, query, userID, month), &report); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find activity report", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &report, nil
}

// ListByUser returns the user's reports newest month first.
func (repo *Repository) ListByUser(ctx context.Context, userID int) ([]domain.ActivityReport, error) {
	query := "SELECT " + activityColumns + " FROM activity_reports WHERE user_id = $1 ORDER BY month DESC"
	rows, err := repo.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list activity reports", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var reports []domain.ActivityReport
	for rows.Next() {
		var report domain.ActivityReport
		if err := scanReport(rows, &report); err != nil {
			zap.L().Error("can't scan activity report", zap.Error(err))
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// ListAllWithUser reads every report with its owner's name in one statement,
// so the result is a consistent snapshot.
func (repo *Repository) ListAllWithUser(ctx context.Context) ([]domain.ActivityExportRow, error) {
	query := `
		SELECT a.user_id, a.month, a.total_reservations, a.total_spent, a.most_used_lot_id, a.updated_at, u.uname
		FROM activity_reports a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.month, a.user_id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list activity reports", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ActivityExportRow
	for rows.Next() {
		var row domain.ActivityExportRow
		err := rows.Scan(&row.UserID, &row.Month, &row.TotalReservations, &row.TotalSpent,
			&row.MostUsedLotID, &row.UpdatedAt, &row.Uname)
		if err != nil {
			zap.L().Error("can't scan activity report", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
