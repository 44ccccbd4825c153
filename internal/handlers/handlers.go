package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/parking/docs"
	adminhandlers "github.com/GlebRadaev/parking/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/parking/internal/handlers/auth"
	lothandlers "github.com/GlebRadaev/parking/internal/handlers/lots"
	parkinghandlers "github.com/GlebRadaev/parking/internal/handlers/parking"
	"github.com/GlebRadaev/parking/internal/service"
	"github.com/GlebRadaev/parking/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ParkingHandler interface {
	ListLots(w http.ResponseWriter, r *http.Request)
	Reserve(w http.ResponseWriter, r *http.Request)
	Vacate(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Reservations(w http.ResponseWriter, r *http.Request)
	Reports(w http.ResponseWriter, r *http.Request)
}

type LotHandler interface {
	CreateLot(w http.ResponseWriter, r *http.Request)
	ListLots(w http.ResponseWriter, r *http.Request)
	UpdateLot(w http.ResponseWriter, r *http.Request)
	DeleteLot(w http.ResponseWriter, r *http.Request)
	SpotDetails(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Users(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Revenue(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	DownloadExport(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	ParkingHandler ParkingHandler
	LotHandler     LotHandler
	AdminHandler   AdminHandler
	JWTService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		ParkingHandler: parkinghandlers.New(s.LotService, s.ReservationService, s.ActivityService),
		LotHandler:     lothandlers.New(s.LotService),
		AdminHandler:   adminhandlers.New(s.AdminService, s.ReportService),
		JWTService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.JWTService))

			r.Route("/user", func(r chi.Router) {
				r.Get("/parking-lots", h.ParkingHandler.ListLots)
				r.Post("/reserve-parking", h.ParkingHandler.Reserve)
				r.Post("/vacate-parking", h.ParkingHandler.Vacate)
				r.Post("/payment/{reservationID}", h.ParkingHandler.Pay)
				r.Get("/reservations", h.ParkingHandler.Reservations)
				r.Get("/reports", h.ParkingHandler.Reports)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Route("/parking-lots", func(r chi.Router) {
					r.Post("/", h.LotHandler.CreateLot)
					r.Get("/", h.LotHandler.ListLots)
					r.Put("/{lotID}", h.LotHandler.UpdateLot)
					r.Delete("/{lotID}", h.LotHandler.DeleteLot)
					r.Get("/{lotID}/spots", h.LotHandler.SpotDetails)
				})
				r.Get("/users", h.AdminHandler.Users)
				r.Get("/summary", h.AdminHandler.Summary)
				r.Get("/revenue-summary", h.AdminHandler.Revenue)
				r.Post("/exports", h.AdminHandler.Export)
				r.Get("/exports/{name}", h.AdminHandler.DownloadExport)
			})
		})
	})

	return r
}
