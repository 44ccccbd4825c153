package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	SpotAvailable = "A"
	SpotOccupied  = "O"
)

// PaymentSuccess is the status of every recorded payment; payments are
// created only once the full cost is settled.
const PaymentSuccess = "Success"

const (
	ReservationActive    = "Active"
	ReservationCompleted = "Completed"
	ReservationPaid      = "Paid"
)

// MonthLayout is the format of ActivityReport month keys.
const MonthLayout = "2006-01"

type User struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	Uname        string    `db:"uname"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

type ParkingLot struct {
	ID            int     `db:"id"`
	Name          string  `db:"name"`
	Price         float64 `db:"price"`
	Address       string  `db:"address"`
	PinCode       string  `db:"pin_code"`
	NumberOfSpots int     `db:"number_of_spots"`
}

type ParkingSpot struct {
	ID     int    `db:"id"`
	LotID  int    `db:"lot_id"`
	Status string `db:"status"`
}

// Reservation is one parking session. EndedAt is nil while the session is active.
// SpotID and LotID are zero once the referenced spot or lot has been removed.
type Reservation struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	SpotID        int        `db:"spot_id"`
	LotID         int        `db:"lot_id"`
	VehicleNumber string     `db:"vehicle_number"`
	StartedAt     time.Time  `db:"started_at"`
	EndedAt       *time.Time `db:"ended_at"`
	Cost          *float64   `db:"cost"`
	Remarks       *string    `db:"remarks"`
}

func (r *Reservation) IsActive() bool {
	return r.EndedAt == nil
}

type Payment struct {
	ID            int       `db:"id"`
	ReservationID int       `db:"reservation_id"`
	UserID        int       `db:"user_id"`
	Amount        float64   `db:"amount"`
	Status        string    `db:"status"`
	PaidAt        time.Time `db:"paid_at"`
}

// ActivityReport holds per-user monthly aggregates. MostUsedLotID is the most
// recently used lot, not the most frequent one.
type ActivityReport struct {
	UserID            int       `db:"user_id"`
	Month             string    `db:"month"`
	TotalReservations int       `db:"total_reservations"`
	TotalSpent        float64   `db:"total_spent"`
	MostUsedLotID     *int      `db:"most_used_lot_id"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// LotOccupancy is a lot together with its live spot counts.
type LotOccupancy struct {
	ParkingLot
	Available int `db:"available"`
	Occupied  int `db:"occupied"`
}

// SpotDetail describes a spot and, when occupied, the session holding it.
type SpotDetail struct {
	ID            int        `db:"id"`
	Status        string     `db:"status"`
	VehicleNumber *string    `db:"vehicle_number"`
	UserEmail     *string    `db:"user_email"`
	ParkedSince   *time.Time `db:"parked_since"`
}

// ReservationView is a reservation enriched for listings.
type ReservationView struct {
	Reservation
	LotName *string `db:"lot_name"`
	Paid    bool    `db:"paid"`
}

func (r *ReservationView) Status() string {
	if r.IsActive() {
		return ReservationActive
	}
	return ReservationCompleted
}

type UserStatus struct {
	ID          int    `db:"id"`
	Uname       string `db:"uname"`
	Email       string `db:"email"`
	CurrentSpot *int   `db:"current_spot"`
}

type LotRevenue struct {
	LotID   int     `db:"lot_id"`
	Name    string  `db:"name"`
	Revenue float64 `db:"revenue"`
}

// ActiveSession is an open reservation joined with its owner, used by reminders.
type ActiveSession struct {
	UserID        int       `db:"user_id"`
	Email         string    `db:"email"`
	Uname         string    `db:"uname"`
	VehicleNumber string    `db:"vehicle_number"`
	SpotID        int       `db:"spot_id"`
	StartedAt     time.Time `db:"started_at"`
}

// MonthKey returns the ActivityReport key for t in UTC. Reports are keyed in
// UTC regardless of the scheduler time zone, so the monthly report job also
// picks its month in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// ActivityExportRow is an ActivityReport joined with its owner's name.
type ActivityExportRow struct {
	ActivityReport
	Uname *string `db:"uname"`
}

// ActivityDelta is one aggregation event. Reservations and AmountSpent are
// added to the stored totals; a non-nil LotUsed replaces the stored lot.
type ActivityDelta struct {
	Reservations int
	AmountSpent  float64
	LotUsed      *int
}

// OccupancySummary is the spot usage across all lots.
type OccupancySummary struct {
	Total     int
	Occupied  int
	Available int
	Lots      []LotOccupancy
}
