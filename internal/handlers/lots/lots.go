package lots

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/dto"
	"github.com/GlebRadaev/parking/internal/handlers/common"
	"github.com/GlebRadaev/parking/internal/handlers/parking"
	"github.com/GlebRadaev/parking/internal/service/lotservice"
	"github.com/GlebRadaev/parking/pkg/utils"
)

//go:generate mockgen -source=lots.go -destination=mock_lots.go -package=lots
type Service interface {
	CreateLot(ctx context.Context, id domain.Identity, lot *domain.ParkingLot) (*domain.ParkingLot, []domain.ParkingSpot, error)
	UpdateLot(ctx context.Context, id domain.Identity, lot *domain.ParkingLot) (*domain.ParkingLot, error)
	DeleteLot(ctx context.Context, id domain.Identity, lotID int) error
	ListLots(ctx context.Context, id domain.Identity) ([]domain.LotOccupancy, error)
	SpotDetails(ctx context.Context, id domain.Identity, lotID int) ([]domain.SpotDetail, error)
}

type LotHandler struct {
	lotService Service
}

func New(lotService Service) *LotHandler {
	return &LotHandler{
		lotService: lotService,
	}
}

// CreateLot godoc
//
//	@Summary		Create a parking lot
//	@Description	Create a lot together with its available spots
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.LotRequestDTO	true	"Parking lot"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.LotResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/parking-lots [post]
func (h *LotHandler) CreateLot(w http.ResponseWriter, r *http.Request) {
	var req dto.LotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NumberOfSpots == nil || *req.NumberOfSpots < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "number_of_spots must be a non-negative number")
		return
	}

	lot, spots, err := h.lotService.CreateLot(r.Context(), common.Identity(r), fromDTO(req, 0))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(lot, len(spots), 0))
}

// ListLots godoc
//
//	@Summary		List parking lots
//	@Description	All lots with their spot counts
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LotResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/parking-lots [get]
func (h *LotHandler) ListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := h.lotService.ListLots(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, parking.LotsToDTO(lots))
}

// UpdateLot godoc
//
//	@Summary		Update a parking lot
//	@Description	Change a lot's attributes and optionally resize it, atomically
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			lotID	path	int					true	"Lot ID"
//	@Param			request	body	dto.LotRequestDTO	true	"Parking lot"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.LotResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Lot not found"
//	@Failure		409	{object}	utils.Response	"Resize conflicts with occupied spots"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/parking-lots/{lotID} [put]
func (h *LotHandler) UpdateLot(w http.ResponseWriter, r *http.Request) {
	lotID, err := common.IntParam(r, "lotID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot id")
		return
	}
	var req dto.LotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NumberOfSpots != nil && *req.NumberOfSpots < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "number_of_spots must be a non-negative number")
		return
	}

	lot, err := h.lotService.UpdateLot(r.Context(), common.Identity(r), fromDTO(req, lotID))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(lot, 0, 0))
}

// DeleteLot godoc
//
//	@Summary		Delete a parking lot
//	@Description	Delete a lot and its spots; fails while any spot is occupied
//	@Tags			Admin
//	@Produce		json
//	@Param			lotID	path	int	true	"Lot ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Parking lot deleted"
//	@Failure		400	{object}	utils.Response	"Invalid lot id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Lot not found"
//	@Failure		409	{object}	utils.Response	"Some spots are still occupied"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/parking-lots/{lotID} [delete]
func (h *LotHandler) DeleteLot(w http.ResponseWriter, r *http.Request) {
	lotID, err := common.IntParam(r, "lotID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot id")
		return
	}
	if err := h.lotService.DeleteLot(r.Context(), common.Identity(r), lotID); err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Parking lot deleted"})
}

// SpotDetails godoc
//
//	@Summary		Spots of a lot
//	@Description	Each spot's status; occupied spots include vehicle, user email and parked-since
//	@Tags			Admin
//	@Produce		json
//	@Param			lotID	path	int	true	"Lot ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.SpotResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid lot id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Lot not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/parking-lots/{lotID}/spots [get]
func (h *LotHandler) SpotDetails(w http.ResponseWriter, r *http.Request) {
	lotID, err := common.IntParam(r, "lotID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid lot id")
		return
	}
	spots, err := h.lotService.SpotDetails(r.Context(), common.Identity(r), lotID)
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}

	response := make([]dto.SpotResponseDTO, 0, len(spots))
	for _, spot := range spots {
		response = append(response, dto.SpotResponseDTO{
			ID:            spot.ID,
			Status:        spot.Status,
			VehicleNumber: spot.VehicleNumber,
			UserEmail:     spot.UserEmail,
			ParkedSince:   common.FormatTimePtr(spot.ParkedSince),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func fromDTO(req dto.LotRequestDTO, lotID int) *domain.ParkingLot {
	lot := &domain.ParkingLot{
		ID:            lotID,
		Name:          req.Name,
		Price:         req.Price,
		Address:       req.Address,
		PinCode:       req.PinCode,
		NumberOfSpots: lotservice.KeepSpotCount,
	}
	if req.NumberOfSpots != nil {
		lot.NumberOfSpots = *req.NumberOfSpots
	}
	return lot
}

func toDTO(lot *domain.ParkingLot, available, occupied int) dto.LotResponseDTO {
	return dto.LotResponseDTO{
		ID:            lot.ID,
		Name:          lot.Name,
		Price:         lot.Price,
		Address:       lot.Address,
		PinCode:       lot.PinCode,
		NumberOfSpots: lot.NumberOfSpots,
		Available:     available,
		Occupied:      occupied,
	}
}
