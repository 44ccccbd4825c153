// Package common holds helpers shared by the HTTP handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/parking/internal/domain"
	"github.com/GlebRadaev/parking/pkg/auth"
	"github.com/GlebRadaev/parking/pkg/utils"
)

// Identity returns the caller stored by the auth middleware. The zero
// identity is returned for anonymous requests and fails every role check.
func Identity(r *http.Request) domain.Identity {
	userID, role, ok := auth.FromContext(r.Context())
	if !ok {
		return domain.Identity{}
	}
	return domain.Identity{UserID: userID, Role: role}
}

func IntParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v <= 0 {
		return 0, domain.ErrInvalidArgument
	}
	return v, nil
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNoActiveReservation):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyParked),
		errors.Is(err, domain.ErrNoAvailableSpot),
		errors.Is(err, domain.ErrReservationStillActive),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrInsufficientAvailableSpots),
		errors.Is(err, domain.ErrBelowOccupancyFloor),
		errors.Is(err, domain.ErrLotHasOccupiedSpots),
		errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithDomainError writes err with its status code. Internal errors are
// logged and hidden from the client.
func RespondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTime(*t)
	return &s
}
