package activityservice

import (
	"context"
	"time"

	"github.com/GlebRadaev/parking/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=activityservice.go -destination=mock_activityservice.go -package=activityservice
type Repo interface {
	Upsert(ctx context.Context, delta *domain.ActivityReport) (*domain.ActivityReport, error)
	ListByUser(ctx context.Context, userID int) ([]domain.ActivityReport, error)
}

// Service maintains per-user monthly activity totals. Totals are only ever
// incremented, never recomputed from reservations.
type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Apply adds delta to the (userID, month) totals, creating the row on first use.
func (s *Service) Apply(ctx context.Context, userID int, month string, delta domain.ActivityDelta) error {
	if userID <= 0 || delta.Reservations < 0 || delta.AmountSpent < 0 {
		return domain.ErrInvalidArgument
	}
	if _, err := time.Parse(domain.MonthLayout, month); err != nil {
		return domain.ErrInvalidArgument
	}

	report, err := s.repo.Upsert(ctx, &domain.ActivityReport{
		UserID:            userID,
		Month:             month,
		TotalReservations: delta.Reservations,
		TotalSpent:        delta.AmountSpent,
		MostUsedLotID:     delta.LotUsed,
		UpdatedAt:         s.now().UTC(),
	})
	if err != nil {
		zap.L().Error("can't apply activity delta", zap.Int("user_id", userID), zap.String("month", month), zap.Error(err))
		return err
	}
	zap.L().Debug("activity updated",
		zap.Int("user_id", userID),
		zap.String("month", month),
		zap.Int("total_reservations", report.TotalReservations),
		zap.Float64("total_spent", report.TotalSpent),
	)
	return nil
}

// UserReports returns the caller's monthly totals, newest first. A caller
// without activity gets an empty row for the current month.
func (s *Service) UserReports(ctx context.Context, id domain.Identity) ([]domain.ActivityReport, error) {
	if err := domain.RequireRole(id, domain.RoleUser); err != nil {
		return nil, err
	}
	reports, err := s.repo.ListByUser(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		now := s.now().UTC()
		reports = []domain.ActivityReport{{
			UserID:    id.UserID,
			Month:     domain.MonthKey(now),
			UpdatedAt: now,
		}}
	}
	return reports, nil
}
