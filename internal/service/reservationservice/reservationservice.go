package reservationservice

import (
	"context"
	"strings"
	"time"

	"github.com/GlebRadaev/parking/internal/billing"
	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/GlebRadaev/parking/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reservationservice.go -destination=mock_reservationservice.go -package=reservationservice
type UserRepo interface {
	LockByID(ctx context.Context, id int) error
}

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindActiveByUser(ctx context.Context, userID int) (*domain.Reservation, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Reservation, error)
	Complete(ctx context.Context, id int, endedAt time.Time, cost float64) error
	ListByUser(ctx context.Context, userID int) ([]domain.ReservationView, error)
}

type PaymentRepo interface {
	ExistsForReservation(ctx context.Context, reservationID int) (bool, error)
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

type LotRepo interface {
	FindByID(ctx context.Context, id int) (*domain.ParkingLot, error)
}

type SpotRegistry interface {
	Occupy(ctx context.Context, lotID int) (*domain.ParkingSpot, *domain.ParkingLot, error)
	Release(ctx context.Context, spotID int) error
}

type Aggregator interface {
	Apply(ctx context.Context, userID int, month string, delta domain.ActivityDelta) error
}

// Service drives a parking session through Active, Completed and Paid.
// Each step commits its spot, reservation, payment and activity changes
// in a single transaction.
type Service struct {
	userRepo        UserRepo
	reservationRepo ReservationRepo
	paymentRepo     PaymentRepo
	lotRepo         LotRepo
	spots           SpotRegistry
	aggregator      Aggregator
	txManager       pg.TXManager
	now             func() time.Time
}

func New(
	userRepo UserRepo,
	reservationRepo ReservationRepo,
	paymentRepo PaymentRepo,
	lotRepo LotRepo,
	spots SpotRegistry,
	aggregator Aggregator,
	txManager pg.TXManager,
) *Service {
	return &Service{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		lotRepo:         lotRepo,
		spots:           spots,
		aggregator:      aggregator,
		txManager:       txManager,
		now:             time.Now,
	}
}

func (s *Service) Reserve(ctx context.Context, id domain.Identity, lotID int, vehicleNumber string, remarks *string) (*domain.Reservation, error) {
	if err := domain.RequireRole(id, domain.RoleUser); err != nil {
		return nil, err
	}
	vehicleNumber = validate.NormalizeVehicleNumber(vehicleNumber)
	if lotID <= 0 || !validate.IsVehicleNumber(vehicleNumber) {
		return nil, domain.ErrInvalidArgument
	}
	if remarks != nil {
		trimmed := strings.TrimSpace(*remarks)
		remarks = &trimmed
		if trimmed == "" {
			remarks = nil
		}
	}

	var reservation *domain.Reservation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.LockByID(ctx, id.UserID); err != nil {
			return err
		}
		active, err := s.reservationRepo.FindActiveByUser(ctx, id.UserID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.ErrAlreadyParked
		}

		spot, lot, err := s.spots.Occupy(ctx, lotID)
		if err != nil {
			return err
		}

		provisional := lot.Price
		reservation, err = s.reservationRepo.Create(ctx, &domain.Reservation{
			UserID:        id.UserID,
			SpotID:        spot.ID,
			LotID:         lot.ID,
			VehicleNumber: vehicleNumber,
			StartedAt:     s.now().UTC(),
			Cost:          &provisional,
			Remarks:       remarks,
		})
		if err != nil {
			return err
		}

		return s.aggregator.Apply(ctx, id.UserID, domain.MonthKey(reservation.StartedAt), domain.ActivityDelta{
			Reservations: 1,
			LotUsed:      &lot.ID,
		})
	})
	if err != nil {
		zap.L().Info("reservation rejected", zap.Int("user_id", id.UserID), zap.Int("lot_id", lotID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("spot reserved",
		zap.Int("user_id", id.UserID),
		zap.Int("reservation_id", reservation.ID),
		zap.Int("spot_id", reservation.SpotID),
	)
	return reservation, nil
}

// Vacate ends the caller's active session, billing it at the lot's current price.
func (s *Service) Vacate(ctx context.Context, id domain.Identity) (*domain.Reservation, error) {
	if err := domain.RequireRole(id, domain.RoleUser); err != nil {
		return nil, err
	}

	var reservation *domain.Reservation
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.userRepo.LockByID(ctx, id.UserID); err != nil {
			return err
		}
		var err error
		reservation, err = s.reservationRepo.FindActiveByUser(ctx, id.UserID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return domain.ErrNoActiveReservation
		}

		rate, err := s.rate(ctx, reservation)
		if err != nil {
			return err
		}
		endedAt := s.now().UTC()
		if endedAt.Before(reservation.StartedAt) {
			endedAt = reservation.StartedAt
		}
		cost := billing.Cost(reservation.StartedAt, endedAt, rate)

		if err := s.reservationRepo.Complete(ctx, reservation.ID, endedAt, cost); err != nil {
			return err
		}
		reservation.EndedAt = &endedAt
		reservation.Cost = &cost

		if reservation.SpotID == 0 {
			return nil
		}
		return s.spots.Release(ctx, reservation.SpotID)
	})
	if err != nil {
		zap.L().Info("vacate rejected", zap.Int("user_id", id.UserID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("spot vacated",
		zap.Int("user_id", id.UserID),
		zap.Int("reservation_id", reservation.ID),
		zap.Float64("cost", *reservation.Cost),
	)
	return reservation, nil
}

// rate is the lot's price at vacate time, or the provisional cost when the
// lot no longer exists.
func (s *Service) rate(ctx context.Context, r *domain.Reservation) (float64, error) {
	if r.LotID != 0 {
		lot, err := s.lotRepo.FindByID(ctx, r.LotID)
		if err != nil {
			return 0, err
		}
		if lot != nil {
			return lot.Price, nil
		}
	}
	if r.Cost != nil {
		return *r.Cost, nil
	}
	return 0, nil
}

func (s *Service) Pay(ctx context.Context, id domain.Identity, reservationID int) (*domain.Payment, error) {
	if err := domain.RequireRole(id, domain.RoleUser); err != nil {
		return nil, err
	}
	if reservationID <= 0 {
		return nil, domain.ErrInvalidArgument
	}

	var payment *domain.Payment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reservation, err := s.reservationRepo.FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if reservation.UserID != id.UserID {
			return domain.ErrNotOwner
		}
		if reservation.IsActive() {
			return domain.ErrReservationStillActive
		}
		paid, err := s.paymentRepo.ExistsForReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if paid {
			return domain.ErrAlreadyPaid
		}

		var amount float64
		if reservation.Cost != nil {
			amount = *reservation.Cost
		}
		payment, err = s.paymentRepo.Create(ctx, &domain.Payment{
			ReservationID: reservationID,
			UserID:        id.UserID,
			Amount:        amount,
			Status:        domain.PaymentSuccess,
			PaidAt:        s.now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.aggregator.Apply(ctx, id.UserID, domain.MonthKey(*reservation.EndedAt), domain.ActivityDelta{
			AmountSpent: amount,
		})
	})
	if err != nil {
		zap.L().Info("payment rejected", zap.Int("user_id", id.UserID), zap.Int("reservation_id", reservationID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("reservation paid",
		zap.Int("user_id", id.UserID),
		zap.Int("reservation_id", reservationID),
		zap.Float64("amount", payment.Amount),
	)
	return payment, nil
}

func (s *Service) List(ctx context.Context, id domain.Identity) ([]domain.ReservationView, error) {
	if err := domain.RequireRole(id, domain.RoleUser); err != nil {
		return nil, err
	}
	views, err := s.reservationRepo.ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []domain.ReservationView{}
	}
	return views, nil
}
