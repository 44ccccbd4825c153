package parking

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/dto"
	"github.com/GlebRadaev/parking/internal/handlers/common"
	"github.com/GlebRadaev/parking/pkg/utils"
)

//go:generate mockgen -source=parking.go -destination=mock_parking.go -package=parking
type LotService interface {
	ListLots(ctx context.Context, id domain.Identity) ([]domain.LotOccupancy, error)
}

type ReservationService interface {
	Reserve(ctx context.Context, id domain.Identity, lotID int, vehicleNumber string, remarks *string) (*domain.Reservation, error)
	Vacate(ctx context.Context, id domain.Identity) (*domain.Reservation, error)
	Pay(ctx context.Context, id domain.Identity, reservationID int) (*domain.Payment, error)
	List(ctx context.Context, id domain.Identity) ([]domain.ReservationView, error)
}

type ActivityService interface {
	UserReports(ctx context.Context, id domain.Identity) ([]domain.ActivityReport, error)
}

type ParkingHandler struct {
	lotService         LotService
	reservationService ReservationService
	activityService    ActivityService
}

func New(lotService LotService, reservationService ReservationService, activityService ActivityService) *ParkingHandler {
	return &ParkingHandler{
		lotService:         lotService,
		reservationService: reservationService,
		activityService:    activityService,
	}
}

// ListLots godoc
//
//	@Summary		List parking lots
//	@Description	Parking lots with their total, available and occupied spot counts
//	@Tags			Parking
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LotResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/parking-lots [get]
func (h *ParkingHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.lotService.ListLots(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, LotsToDTO(lots))
}

// Reserve godoc
//
//	@Summary		Reserve a parking spot
//	@Description	Occupy the first available spot of a lot for the caller's vehicle
//	@Tags			Parking
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ReserveRequestDTO	true	"Reservation request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ReservationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Lot not found"
//	@Failure		409	{object}	utils.Response	"Already parked or no available spot"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reserve-parking [post]
func (h *ParkingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req dto.ReserveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.LotID <= 0 || req.VehicleNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "lot_id and vehicle_number are required")
		return
	}

	reservation, err := h.reservationService.Reserve(r.Context(), common.Identity(r), req.LotID, req.VehicleNumber, req.Remarks)
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reservationToDTO(reservation))
}

// Vacate godoc
//
//	@Summary		Vacate the parking spot
//	@Description	End the caller's active parking session and return the final cost
//	@Tags			Parking
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"No active reservation"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/vacate-parking [post]
func (h *ParkingHandler) Vacate(w http.ResponseWriter, r *http.Request) {
	reservation, err := h.reservationService.Vacate(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	resp := reservationToDTO(reservation)
	resp.Status = domain.ReservationCompleted
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Pay godoc
//
//	@Summary		Pay for a reservation
//	@Description	Pay the full cost of a completed reservation
//	@Tags			Parking
//	@Produce		json
//	@Param			reservationID	path	int	true	"Reservation ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid reservation id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Reservation belongs to another user"
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Reservation still active or already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payment/{reservationID} [post]
func (h *ParkingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	reservationID, err := common.IntParam(r, "reservationID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	payment, err := h.reservationService.Pay(r.Context(), common.Identity(r), reservationID)
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentResponseDTO{
		ID:            payment.ID,
		ReservationID: payment.ReservationID,
		Amount:        payment.Amount,
		Status:        payment.Status,
		PaidAt:        common.FormatTime(payment.PaidAt),
	})
}

// Reservations godoc
//
//	@Summary		List reservations
//	@Description	The caller's reservations, newest first
//	@Tags			Parking
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reservations [get]
func (h *ParkingHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	views, err := h.reservationService.List(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}

	response := make([]dto.ReservationResponseDTO, 0, len(views))
	for _, view := range views {
		item := reservationToDTO(&view.Reservation)
		item.LotName = view.LotName
		item.Status = view.Status()
		item.Paid = view.Paid
		response = append(response, item)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Reports godoc
//
//	@Summary		Monthly activity
//	@Description	The caller's monthly reservation and spending totals, newest month first
//	@Tags			Parking
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ActivityReportDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/reports [get]
func (h *ParkingHandler) Reports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.activityService.UserReports(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}

	response := make([]dto.ActivityReportDTO, 0, len(reports))
	for _, report := range reports {
		response = append(response, dto.ActivityReportDTO{
			Month:             report.Month,
			TotalReservations: report.TotalReservations,
			TotalSpent:        report.TotalSpent,
			MostUsedLotID:     report.MostUsedLotID,
			UpdatedAt:         common.FormatTime(report.UpdatedAt),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func LotsToDTO(lots []domain.LotOccupancy) []dto.LotResponseDTO {
	response := make([]dto.LotResponseDTO, 0, len(lots))
	for _, lot := range lots {
		response = append(response, dto.LotResponseDTO{
			ID:            lot.ID,
			Name:          lot.Name,
			Price:         lot.Price,
			Address:       lot.Address,
			PinCode:       lot.PinCode,
			NumberOfSpots: lot.NumberOfSpots,
			Available:     lot.Available,
			Occupied:      lot.Occupied,
		})
	}
	return response
}

func reservationToDTO(r *domain.Reservation) dto.ReservationResponseDTO {
	resp := dto.ReservationResponseDTO{
		ID:            r.ID,
		LotID:         r.LotID,
		SpotID:        r.SpotID,
		VehicleNumber: r.VehicleNumber,
		StartedAt:     common.FormatTime(r.StartedAt),
		EndedAt:       common.FormatTimePtr(r.EndedAt),
		Cost:          r.Cost,
		Remarks:       r.Remarks,
	}
	if r.IsActive() {
		resp.Status = domain.ReservationActive
	}
	return resp
}
