package domain

import "errors"

var (
	ErrNotFound                   = errors.New("not found")
	ErrAlreadyParked              = errors.New("user already has an active reservation")
	ErrNoAvailableSpot            = errors.New("no available parking spots in this lot")
	ErrNoActiveReservation        = errors.New("no active parking reservation found")
	ErrReservationStillActive     = errors.New("cannot pay for a reservation that is still active")
	ErrAlreadyPaid                = errors.New("this reservation has already been paid for")
	ErrInsufficientAvailableSpots = errors.New("not enough available spots to remove")
	ErrBelowOccupancyFloor        = errors.New("cannot reduce spots below number of occupied spots")
	ErrLotHasOccupiedSpots        = errors.New("some spots are still occupied")
	ErrNotOwner                   = errors.New("reservation does not belong to user")
	ErrForbidden                  = errors.New("forbidden")
	ErrInvalidArgument            = errors.New("invalid argument")
	ErrUserExists                 = errors.New("user already exists")
	ErrInvalidCredentials         = errors.New("invalid credentials")
)
