package lotrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const lotColumns = "id, name, price, address, pin_code, number_of_spots"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanLot(row pgx.Row, lot *domain.ParkingLot) error {
	return row.Scan(&lot.ID, &lot.Name, &lot.Price, &lot.Address, &lot.PinCode, &lot.NumberOfSpots)
}

func (r *Repository) Create(ctx context.Context, lot *domain.ParkingLot) (*domain.ParkingLot, error) {
	query := `
		INSERT INTO parking_lots (name, price, address, pin_code, number_of_spots)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, lot.Name, lot.Price, lot.Address, lot.PinCode, lot.NumberOfSpots).Scan(&lot.ID)
	if err != nil {
		zap.L().Error("can't save parking lot", zap.Error(err))
		return nil, err
	}
	return lot, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ParkingLot, error) {
	var lot domain.ParkingLot
	err := scanLot(r.db.QueryRow(ctx, "SELECT "+lotColumns+" FROM parking_lots WHERE id = $1", id), &lot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find parking lot", zap.Error(err))
		return nil, err
	}
	return &lot, nil
}

// LockForUpdate loads the lot and excludes concurrent spot claims on it
// until the transaction ends.
func (r *Repository) LockForUpdate(ctx context.Context, id int) (*domain.ParkingLot, error) {
	return r.lock(ctx, "SELECT "+lotColumns+" FROM parking_lots WHERE id = $1 FOR UPDATE", id)
}

// LockForShare loads the lot and blocks resizing or deletion of it until the
// transaction ends, while letting other claims proceed.
func (r *Repository) LockForShare(ctx context.Context, id int) (*domain.ParkingLot, error) {
	return r.lock(ctx, "SELECT "+lotColumns+" FROM parking_lots WHERE id = $1 FOR SHARE", id)
}

func (r *Repository) lock(ctx context.Context, query string, id int) (*domain.ParkingLot, error) {
	var lot domain.ParkingLot
	err := scanLot(r.db.QueryRow(ctx, query, id), &lot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't lock parking lot", zap.Error(err))
		return nil, err
	}
	return &lot, nil
}

func (r *Repository) Update(ctx context.Context, lot *domain.ParkingLot) error {
	query := `
		UPDATE parking_lots
		SET name = $1, price = $2, address = $3, pin_code = $4, number_of_spots = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, lot.Name, lot.Price, lot.Address, lot.PinCode, lot.NumberOfSpots, lot.ID)
	if err != nil {
		zap.L().Error("failed to update parking lot", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM parking_lots WHERE id = $1", id)
	if err != nil {
		zap.L().Error("failed to delete parking lot", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) ListWithOccupancy(ctx context.Context) ([]domain.LotOccupancy, error) {
	query := `
		SELECT l.id, l.name, l.price, l.address, l.pin_code, l.number_of_spots,
			COUNT(s.id) FILTER (WHERE s.status = 'A') AS available,
			COUNT(s.id) FILTER (WHERE s.status = 'O') AS occupied
		FROM parking_lots l
		LEFT JOIN parking_spots s ON s.lot_id = l.id
		GROUP BY l.id
		ORDER BY l.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list parking lots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lots []domain.LotOccupancy
	for rows.Next() {
		var lot domain.LotOccupancy
		err := rows.Scan(&lot.ID, &lot.Name, &lot.Price, &lot.Address, &lot.PinCode, &lot.NumberOfSpots, &lot.Available, &lot.Occupied)
		if err != nil {
			zap.L().Error("can't scan parking lot row", zap.Error(err))
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

// Revenue sums the costs of completed reservations per lot.
func (r *Repository) Revenue(ctx context.Context) ([]domain.LotRevenue, error) {
	query := `
		SELECT l.id, l.name, COALESCE(SUM(r.cost) FILTER (WHERE r.ended_at IS NOT NULL), 0) AS revenue
		FROM parking_lots l
		LEFT JOIN reservations r ON r.lot_id = l.id
		GROUP BY l.id
		ORDER BY l.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get revenue", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var revenue []domain.LotRevenue
	for rows.Next() {
		var lr domain.LotRevenue
		if err := rows.Scan(&lr.LotID, &lr.Name, &lr.Revenue); err != nil {
			zap.L().Error("can't scan revenue row", zap.Error(err))
			return nil, err
		}
		revenue = append(revenue, lr)
	}
	return revenue, rows.Err()
}
