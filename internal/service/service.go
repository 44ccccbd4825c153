package service

import (
	"time"

	"github.com/GlebRadaev/parking/internal/pg"
	"github.com/GlebRadaev/parking/internal/repo"
	"github.com/GlebRadaev/parking/internal/service/activityservice"
	"github.com/GlebRadaev/parking/internal/service/adminservice"
	"github.com/GlebRadaev/parking/internal/service/authservice"
	"github.com/GlebRadaev/parking/internal/service/lotservice"
	"github.com/GlebRadaev/parking/internal/service/reportservice"
	"github.com/GlebRadaev/parking/internal/service/reservationservice"
	"github.com/GlebRadaev/parking/pkg/auth"
)

type Options struct {
	JWTService auth.JWTServiceInterface
	TokenTTL   time.Duration
	BcryptCost int
	Dispatcher reportservice.Dispatcher
	ExportDir  string
	Location   *time.Location
}

type Services struct {
	AuthService        *authservice.Service
	LotService         *lotservice.Service
	ReservationService *reservationservice.Service
	ActivityService    *activityservice.Service
	AdminService       *adminservice.Service
	ReportService      *reportservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, opts Options) *Services {
	lotService := lotservice.New(repo.LotRepo, repo.SpotRepo, txManager)
	activityService := activityservice.New(repo.ActivityRepo)
	reservationService := reservationservice.New(
		repo.UserRepo,
		repo.ReservationRepo,
		repo.PaymentRepo,
		repo.LotRepo,
		lotService,
		activityService,
		txManager,
	)

	return &Services{
		AuthService:        authservice.New(repo.UserRepo, auth.NewHashService(opts.BcryptCost), opts.JWTService, opts.TokenTTL),
		LotService:         lotService,
		ReservationService: reservationService,
		ActivityService:    activityService,
		AdminService:       adminservice.New(repo.UserRepo, repo.LotRepo),
		ReportService: reportservice.New(
			repo.ActivityRepo,
			repo.UserRepo,
			repo.ReservationRepo,
			repo.DeliveryRepo,
			opts.Dispatcher,
			opts.ExportDir,
			opts.Location,
		),
	}
}
