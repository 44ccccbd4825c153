package dto

type LotRequestDTO struct {
	Name    string  `json:"name" example:"Central"`
	Price   float64 `json:"price" example:"10"`
	Address string  `json:"address" example:"MG Road"`
	PinCode string  `json:"pin" example:"560001"`
	// Optional on update; the current size is kept when omitted.
	NumberOfSpots *int `json:"number_of_spots,omitempty" example:"20"`
}

type LotResponseDTO struct {
	ID            int     `json:"id" example:"1"`
	Name          string  `json:"name" example:"Central"`
	Price         float64 `json:"price" example:"10"`
	Address       string  `json:"address" example:"MG Road"`
	PinCode       string  `json:"pin" example:"560001"`
	NumberOfSpots int     `json:"number_of_spots" example:"20"`
	Available     int     `json:"available" example:"18"`
	Occupied      int     `json:"occupied" example:"2"`
}

type SpotResponseDTO struct {
	ID            int     `json:"id" example:"7"`
	Status        string  `json:"status" example:"O"`
	VehicleNumber *string `json:"vehicle_number,omitempty" example:"KA01AB1234"`
	UserEmail     *string `json:"user_email,omitempty" example:"alice@example.com"`
	ParkedSince   *string `json:"parked_since,omitempty" example:"2024-03-04T08:15:00Z"`
}
