package lotservice

import (
	"context"
	"strings"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/GlebRadaev/parking/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=lotservice.go -destination=mock_lotservice.go -package=lotservice
type LotRepo interface {
	Create(ctx context.Context, lot *domain.ParkingLot) (*domain.ParkingLot, error)
	FindByID(ctx context.Context, id int) (*domain.ParkingLot, error)
	LockForUpdate(ctx context.Context, id int) (*domain.ParkingLot, error)
	LockForShare(ctx context.Context, id int) (*domain.ParkingLot, error)
	Update(ctx context.Context, lot *domain.ParkingLot) error
	Delete(ctx context.Context, id int) error
	ListWithOccupancy(ctx context.Context) ([]domain.LotOccupancy, error)
}

type SpotRepo interface {
	CreateBatch(ctx context.Context, lotID, n int) ([]domain.ParkingSpot, error)
	CountByStatus(ctx context.Context, lotID int) (int, int, error)
	ClaimAvailable(ctx context.Context, lotID int) (*domain.ParkingSpot, error)
	Release(ctx context.Context, spotID int) (bool, error)
	DeleteAvailable(ctx context.Context, lotID, n int) (int, error)
	DeleteByLot(ctx context.Context, lotID int) (int, error)
	ListDetails(ctx context.Context, lotID int) ([]domain.SpotDetail, error)
}

// Service owns spot availability. Every change to a lot's spots runs in one
// transaction holding the lot row lock, so the lot's spot count always
// equals its number of spot rows.
type Service struct {
	lotRepo   LotRepo
	spotRepo  SpotRepo
	txManager pg.TXManager
}

func New(lotRepo LotRepo, spotRepo SpotRepo, txManager pg.TXManager) *Service {
	return &Service{
		lotRepo:   lotRepo,
		spotRepo:  spotRepo,
		txManager: txManager,
	}
}

func validateLot(lot *domain.ParkingLot) error {
	lot.Name = strings.TrimSpace(lot.Name)
	lot.Address = strings.TrimSpace(lot.Address)
	if lot.Name == "" || lot.Address == "" || lot.Price < 0 || lot.NumberOfSpots < 0 {
		return domain.ErrInvalidArgument
	}
	if !validate.IsPinCode(lot.PinCode) {
		return domain.ErrInvalidArgument
	}
	return nil
}

func (s *Service) CreateLot(ctx context.Context, id domain.Identity, lot *domain.ParkingLot) (*domain.ParkingLot, []domain.ParkingSpot, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, nil, err
	}
	if err := validateLot(lot); err != nil {
		return nil, nil, err
	}

	var created *domain.ParkingLot
	var spots []domain.ParkingSpot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.lotRepo.Create(ctx, lot)
		if err != nil {
			return err
		}
		spots, err = s.spotRepo.CreateBatch(ctx, created.ID, created.NumberOfSpots)
		return err
	})
	if err != nil {
		zap.L().Error("can't create parking lot", zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("parking lot created", zap.Int("lot_id", created.ID), zap.Int("spots", len(spots)))
	return created, spots, nil
}

// KeepSpotCount as lot.NumberOfSpots makes UpdateLot leave the size alone.
const KeepSpotCount = -1

// UpdateLot changes the lot's attributes and resizes it to
// lot.NumberOfSpots in one transaction.
func (s *Service) UpdateLot(ctx context.Context, id domain.Identity, lot *domain.ParkingLot) (*domain.ParkingLot, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	keep := lot.NumberOfSpots == KeepSpotCount
	if keep {
		lot.NumberOfSpots = 0
	}
	if err := validateLot(lot); err != nil {
		return nil, err
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.lotRepo.LockForUpdate(ctx, lot.ID)
		if err != nil {
			return err
		}
		if keep {
			lot.NumberOfSpots = current.NumberOfSpots
		}
		if err := s.resize(ctx, lot.ID, lot.NumberOfSpots); err != nil {
			return err
		}
		return s.lotRepo.Update(ctx, lot)
	})
	if err != nil {
		zap.L().Info("parking lot not updated", zap.Int("lot_id", lot.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("parking lot updated", zap.Int("lot_id", lot.ID), zap.Int("spots", lot.NumberOfSpots))
	return lot, nil
}

func (s *Service) ResizeLot(ctx context.Context, id domain.Identity, lotID, newCount int) error {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return err
	}
	if newCount < 0 {
		return domain.ErrInvalidArgument
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lot, err := s.lotRepo.LockForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if err := s.resize(ctx, lotID, newCount); err != nil {
			return err
		}
		lot.NumberOfSpots = newCount
		return s.lotRepo.Update(ctx, lot)
	})
	if err != nil {
		zap.L().Info("parking lot not resized", zap.Int("lot_id", lotID), zap.Error(err))
		return err
	}
	zap.L().Info("parking lot resized", zap.Int("lot_id", lotID), zap.Int("spots", newCount))
	return nil
}

// resize must run inside a transaction holding the lot row lock.
func (s *Service) resize(ctx context.Context, lotID, newCount int) error {
	available, occupied, err := s.spotRepo.CountByStatus(ctx, lotID)
	if err != nil {
		return err
	}
	current := available + occupied

	switch {
	case newCount < occupied:
		return domain.ErrBelowOccupancyFloor
	case newCount > current:
		_, err := s.spotRepo.CreateBatch(ctx, lotID, newCount-current)
		return err
	case newCount < current:
		remove := current - newCount
		if available < remove {
			return domain.ErrInsufficientAvailableSpots
		}
		removed, err := s.spotRepo.DeleteAvailable(ctx, lotID, remove)
		if err != nil {
			return err
		}
		if removed < remove {
			return domain.ErrInsufficientAvailableSpots
		}
	}
	return nil
}

func (s *Service) DeleteLot(ctx context.Context, id domain.Identity, lotID int) error {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return err
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lotRepo.LockForUpdate(ctx, lotID); err != nil {
			return err
		}
		_, occupied, err := s.spotRepo.CountByStatus(ctx, lotID)
		if err != nil {
			return err
		}
		if occupied > 0 {
			return domain.ErrLotHasOccupiedSpots
		}
		if _, err := s.spotRepo.DeleteByLot(ctx, lotID); err != nil {
			return err
		}
		return s.lotRepo.Delete(ctx, lotID)
	})
	if err != nil {
		zap.L().Info("parking lot not deleted", zap.Int("lot_id", lotID), zap.Error(err))
		return err
	}
	zap.L().Info("parking lot deleted", zap.Int("lot_id", lotID))
	return nil
}

// Occupy claims the lowest-id available spot of the lot and returns it with
// the lot. It joins the caller's transaction when there is one.
func (s *Service) Occupy(ctx context.Context, lotID int) (*domain.ParkingSpot, *domain.ParkingLot, error) {
	var spot *domain.ParkingSpot
	var lot *domain.ParkingLot
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		lot, err = s.lotRepo.LockForShare(ctx, lotID)
		if err != nil {
			return err
		}
		spot, err = s.spotRepo.ClaimAvailable(ctx, lotID)
		if err != nil {
			return err
		}
		if spot == nil {
			return domain.ErrNoAvailableSpot
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return spot, lot, nil
}

// Release frees an occupied spot. Releasing an available spot does nothing.
func (s *Service) Release(ctx context.Context, spotID int) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		released, err := s.spotRepo.Release(ctx, spotID)
		if err != nil {
			return err
		}
		if !released {
			zap.L().Debug("spot already available", zap.Int("spot_id", spotID))
		}
		return nil
	})
}

func (s *Service) ListLots(ctx context.Context, id domain.Identity) ([]domain.LotOccupancy, error) {
	if err := domain.RequireRole(id, domain.RoleUser, domain.RoleAdmin); err != nil {
		return nil, err
	}
	lots, err := s.lotRepo.ListWithOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	if lots == nil {
		lots = []domain.LotOccupancy{}
	}
	return lots, nil
}

func (s *Service) SpotDetails(ctx context.Context, id domain.Identity, lotID int) ([]domain.SpotDetail, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	lot, err := s.lotRepo.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	spots, err := s.spotRepo.ListDetails(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if spots == nil {
		spots = []domain.SpotDetail{}
	}
	return spots, nil
}
