package dto

type ReserveRequestDTO struct {
	LotID         int     `json:"lot_id" example:"1"`
	VehicleNumber string  `json:"vehicle_number" example:"KA01AB1234"`
	Remarks       *string `json:"remarks,omitempty" example:"near the gate"`
}

type ReservationResponseDTO struct {
	ID            int      `json:"id" example:"12"`
	LotID         int      `json:"lot_id,omitempty" example:"1"`
	LotName       *string  `json:"lot_name,omitempty" example:"Central"`
	SpotID        int      `json:"spot_id,omitempty" example:"7"`
	VehicleNumber string   `json:"vehicle_number" example:"KA01AB1234"`
	StartedAt     string   `json:"started_at" example:"2024-03-04T08:15:00Z"`
	EndedAt       *string  `json:"ended_at,omitempty" example:"2024-03-04T09:45:00Z"`
	Cost          *float64 `json:"cost,omitempty" example:"20"`
	Remarks       *string  `json:"remarks,omitempty"`
	Status        string   `json:"status,omitempty" example:"Completed"`
	Paid          bool     `json:"paid"`
}

type PaymentResponseDTO struct {
	ID            int     `json:"payment_id" example:"3"`
	ReservationID int     `json:"reservation_id" example:"12"`
	Amount        float64 `json:"amount" example:"20"`
	Status        string  `json:"status" example:"Success"`
	PaidAt        string  `json:"paid_at" example:"2024-03-04T09:50:00Z"`
}
