package repo

import (
	"github.com/GlebRadaev/parking/internal/pg"
	activityrepo "github.com/GlebRadaev/parking/internal/repo/activity-repo"
	deliveryrepo "github.com/GlebRadaev/parking/internal/repo/delivery-repo"
	lotrepo "github.com/GlebRadaev/parking/internal/repo/lot-repo"
	paymentrepo "github.com/GlebRadaev/parking/internal/repo/payment-repo"
	reservationrepo "github.com/GlebRadaev/parking/internal/repo/reservation-repo"
	spotrepo "github.com/GlebRadaev/parking/internal/repo/spot-repo"
	userrepo "github.com/GlebRadaev/parking/internal/repo/user-repo"
	"github.com/GlebRadaev/parking/internal/service/activityservice"
	"github.com/GlebRadaev/parking/internal/service/adminservice"
	"github.com/GlebRadaev/parking/internal/service/authservice"
	"github.com/GlebRadaev/parking/internal/service/lotservice"
	"github.com/GlebRadaev/parking/internal/service/reportservice"
	"github.com/GlebRadaev/parking/internal/service/reservationservice"
)

type UserRepo interface {
	authservice.Repo
	reservationservice.UserRepo
	adminservice.UserRepo
	reportservice.UserRepo
}

type LotRepo interface {
	lotservice.LotRepo
	adminservice.LotRepo
}

type ReservationRepo interface {
	reservationservice.ReservationRepo
	reportservice.ReservationRepo
}

type ActivityRepo interface {
	activityservice.Repo
	reportservice.ActivityRepo
}

type Repositories struct {
	UserRepo        UserRepo
	LotRepo         LotRepo
	SpotRepo        lotservice.SpotRepo
	ReservationRepo ReservationRepo
	PaymentRepo     reservationservice.PaymentRepo
	ActivityRepo    ActivityRepo
	DeliveryRepo    reportservice.DeliveryRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		LotRepo:         lotrepo.New(conn),
		SpotRepo:        spotrepo.New(conn),
		ReservationRepo: reservationrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
		ActivityRepo:    activityrepo.New(conn),
		DeliveryRepo:    deliveryrepo.New(conn),
	}
}
