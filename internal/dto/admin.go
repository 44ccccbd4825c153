package dto

type ActivityReportDTO struct {
	Month             string  `json:"month" example:"2024-03"`
	TotalReservations int     `json:"total_reservations" example:"4"`
	TotalSpent        float64 `json:"total_spent" example:"80"`
	MostUsedLotID     *int    `json:"most_used_lot_id" example:"1"`
	UpdatedAt         string  `json:"updated_at" example:"2024-03-04T09:50:00Z"`
}

type UserStatusDTO struct {
	ID          int    `json:"id" example:"2"`
	Uname       string `json:"uname" example:"alice"`
	Email       string `json:"email" example:"alice@example.com"`
	CurrentSpot *int   `json:"current_spot" example:"7"`
	Status      string `json:"status" example:"Active"`
}

type SummaryResponseDTO struct {
	Total     int              `json:"total_spots" example:"40"`
	Occupied  int              `json:"occupied_spots" example:"3"`
	Available int              `json:"available_spots" example:"37"`
	Lots      []LotResponseDTO `json:"lots"`
}

type RevenueResponseDTO struct {
	LotID   int     `json:"lot_id" example:"1"`
	Name    string  `json:"name" example:"Central"`
	Revenue float64 `json:"revenue" example:"320.5"`
}

type ExportResponseDTO struct {
	Message string `json:"message"`
	File    string `json:"file" example:"activity_report_20240305_143015.csv"`
}
