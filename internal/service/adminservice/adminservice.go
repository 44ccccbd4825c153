package adminservice

import (
	"context"

	"github.com/GlebRadaev/parking/internal/domain"
)

//go:generate mockgen -source=adminservice.go -destination=mock_adminservice.go -package=adminservice
type UserRepo interface {
	ListWithStatus(ctx context.Context) ([]domain.UserStatus, error)
}

type LotRepo interface {
	ListWithOccupancy(ctx context.Context) ([]domain.LotOccupancy, error)
	Revenue(ctx context.Context) ([]domain.LotRevenue, error)
}

type Service struct {
	userRepo UserRepo
	lotRepo  LotRepo
}

func New(userRepo UserRepo, lotRepo LotRepo) *Service {
	return &Service{
		userRepo: userRepo,
		lotRepo:  lotRepo,
	}
}

func (s *Service) Users(ctx context.Context, id domain.Identity) ([]domain.UserStatus, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListWithStatus(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.UserStatus{}
	}
	return users, nil
}

func (s *Service) Summary(ctx context.Context, id domain.Identity) (*domain.OccupancySummary, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	lots, err := s.lotRepo.ListWithOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.OccupancySummary{Lots: []domain.LotOccupancy{}}
	for _, lot := range lots {
		summary.Available += lot.Available
		summary.Occupied += lot.Occupied
		summary.Lots = append(summary.Lots, lot)
	}
	summary.Total = summary.Available + summary.Occupied
	return summary, nil
}

func (s *Service) Revenue(ctx context.Context, id domain.Identity) ([]domain.LotRevenue, error) {
	if err := domain.RequireRole(id, domain.RoleAdmin); err != nil {
		return nil, err
	}
	revenue, err := s.lotRepo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		revenue = []domain.LotRevenue{}
	}
	return revenue, nil
}
