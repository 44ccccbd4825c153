package spotrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateBatch inserts n Available spots for the lot and returns them in id order.
func (r *Repository) CreateBatch(ctx context.Context, lotID, n int) ([]domain.ParkingSpot, error) {
	if n <= 0 {
		return nil, nil
	}
	query := `
		INSERT INTO parking_spots (lot_id, status)
		SELECT $1, 'A' FROM generate_series(1, $2)
		RETURNING id, lot_id, status
	`
	rows, err := r.db.Query(ctx, query, lotID, n)
	if err != nil {
		zap.L().Error("can't create parking spots", zap.Int("lot_id", lotID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	spots := make([]domain.ParkingSpot, 0, n)
	for rows.Next() {
		var spot domain.ParkingSpot
		if err := rows.Scan(&spot.ID, &spot.LotID, &spot.Status); err != nil {
			zap.L().Error("can't scan parking spot", zap.Error(err))
			return nil, err
		}
		spots = append(spots, spot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(spots) != n {
		return nil, errors.New("spot batch insert returned unexpected row count")
	}
	return spots, nil
}

// CountByStatus returns the number of available and occupied spots in the lot.
func (r *Repository) CountByStatus(ctx context.Context, lotID int) (available, occupied int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'A'), COUNT(*) FILTER (WHERE status = 'O')
		FROM parking_spots
		WHERE lot_id = $1
	`
	err = r.db.QueryRow(ctx, query, lotID).Scan(&available, &occupied)
	if err != nil {
		zap.L().Error("can't count parking spots", zap.Int("lot_id", lotID), zap.Error(err))
		return 0, 0, err
	}
	return available, occupied, nil
}

// ClaimAvailable marks the lowest-id Available spot of the lot as Occupied.
// Spots locked by concurrent claims are skipped. Returns nil when none is free.
func (r *Repository) ClaimAvailable(ctx context.Context, lotID int) (*domain.ParkingSpot, error) {
	query := `
		UPDATE parking_spots SET status = 'O'
		WHERE id = (
			SELECT id FROM parking_spots
			WHERE lot_id = $1 AND status = 'A'
			ORDER BY id
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, lot_id, status
	`
	var spot domain.ParkingSpot
	err := r.db.QueryRow(ctx, query, lotID).Scan(&spot.ID, &spot.LotID, &spot.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't claim parking spot", zap.Int("lot_id", lotID), zap.Error(err))
		return nil, err
	}
	return &spot, nil
}

// Release marks the spot Available. Releasing an Available or missing spot is a no-op.
func (r *Repository) Release(ctx context.Context, spotID int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE parking_spots SET status = 'A' WHERE id = $1 AND status = 'O'", spotID)
	if err != nil {
		zap.L().Error("can't release parking spot", zap.Int("spot_id", spotID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAvailable removes up to n Available spots of the lot, lowest id first,
// and returns how many were removed.
func (r *Repository) DeleteAvailable(ctx context.Context, lotID, n int) (int, error) {
	query := `
		DELETE FROM parking_spots
		WHERE id IN (
			SELECT id FROM parking_spots
			WHERE lot_id = $1 AND status = 'A'
			ORDER BY id
			LIMIT $2
			FOR UPDATE
		)
	`
	tag, err := r.db.Exec(ctx, query, lotID, n)
	if err != nil {
		zap.L().Error("can't delete parking spots", zap.Int("lot_id", lotID), zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) DeleteByLot(ctx context.Context, lotID int) (int, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM parking_spots WHERE lot_id = $1 AND status = 'A'", lotID)
	if err != nil {
		zap.L().Error("can't delete parking spots", zap.Int("lot_id", lotID), zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ListDetails returns the lot's spots in id order with the active session on each occupied one.
func (r *Repository) ListDetails(ctx context.Context, lotID int) ([]domain.SpotDetail, error) {
	query := `
		SELECT s.id, s.status, r.vehicle_number, u.email, r.started_at
		FROM parking_spots s
		LEFT JOIN reservations r ON r.spot_id = s.id AND r.ended_at IS NULL
		LEFT JOIN users u ON u.id = r.user_id
		WHERE s.lot_id = $1
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query, lotID)
	if err != nil {
		zap.L().Error("can't list parking spots", zap.Int("lot_id", lotID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var spots []domain.SpotDetail
	for rows.Next() {
		var spot domain.SpotDetail
		if err := rows.Scan(&spot.ID, &spot.Status, &spot.VehicleNumber, &spot.UserEmail, &spot.ParkedSince); err != nil {
			zap.L().Error("can't scan parking spot", zap.Error(err))
			return nil, err
		}
		spots = append(spots, spot)
	}
	return spots, rows.Err()
}
