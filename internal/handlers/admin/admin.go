package admin

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/internal/dto"
	"github.com/GlebRadaev/parking/internal/handlers/common"
	"github.com/GlebRadaev/parking/internal/handlers/parking"
	"github.com/GlebRadaev/parking/pkg/utils"
)

const (
	statusActive = "Active"
	statusIdle   = "Idle"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin
type Service interface {
	Users(ctx context.Context, id domain.Identity) ([]domain.UserStatus, error)
	Summary(ctx context.Context, id domain.Identity) (*domain.OccupancySummary, error)
	Revenue(ctx context.Context, id domain.Identity) ([]domain.LotRevenue, error)
}

type ExportService interface {
	ExportCSVFor(ctx context.Context, id domain.Identity) (string, error)
	ExportPath(ctx context.Context, id domain.Identity, name string) (string, error)
}

type AdminHandler struct {
	adminService  Service
	exportService ExportService
}

func New(adminService Service, exportService ExportService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		exportService: exportService,
	}
}

// Users godoc
//
//	@Summary		List users
//	@Description	Users with their current spot and Active/Idle status
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.UserStatusDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.Users(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}

	response := make([]dto.UserStatusDTO, 0, len(users))
	for _, user := range users {
		status := statusIdle
		if user.CurrentSpot != nil {
			status = statusActive
		}
		response = append(response, dto.UserStatusDTO{
			ID:          user.ID,
			Uname:       user.Uname,
			Email:       user.Email,
			CurrentSpot: user.CurrentSpot,
			Status:      status,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Summary godoc
//
//	@Summary		Occupancy summary
//	@Description	Total, occupied and available spots overall and per lot
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SummaryResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/summary [get]
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.Summary(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SummaryResponseDTO{
		Total:     summary.Total,
		Occupied:  summary.Occupied,
		Available: summary.Available,
		Lots:      parking.LotsToDTO(summary.Lots),
	})
}

// Revenue godoc
//
//	@Summary		Revenue summary
//	@Description	Per lot, the sum of costs of completed reservations
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.RevenueResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/revenue-summary [get]
func (h *AdminHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.adminService.Revenue(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}

	response := make([]dto.RevenueResponseDTO, 0, len(revenue))
	for _, lot := range revenue {
		response = append(response, dto.RevenueResponseDTO{
			LotID:   lot.LotID,
			Name:    lot.Name,
			Revenue: lot.Revenue,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Export godoc
//
//	@Summary		Export activity reports
//	@Description	Write every monthly activity report to a CSV file now
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ExportResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/exports [post]
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	name, err := h.exportService.ExportCSVFor(r.Context(), common.Identity(r))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ExportResponseDTO{
		Message: "Export created",
		File:    name,
	})
}

// DownloadExport godoc
//
//	@Summary		Download an export
//	@Description	Download a CSV file created by the export
//	@Tags			Admin
//	@Produce		text/csv
//	@Param			name	path	string	true	"Export file name"
//	@Security		BearerAuth
//	@Success		200	{file}		file
//	@Failure		400	{object}	utils.Response	"Invalid file name"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Export not found"
//	@Router			/api/admin/exports/{name} [get]
func (h *AdminHandler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	path, err := h.exportService.ExportPath(r.Context(), common.Identity(r), chi.URLParam(r, "name"))
	if err != nil {
		common.RespondWithDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
