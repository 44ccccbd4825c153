package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" example:"alice@example.com"`
	Uname    string `json:"uname" example:"alice"`
	Password string `json:"password" example:"secret123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	ID      int    `json:"id" example:"2"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret123"`
}

type LoginResponseDTO struct {
	Message string   `json:"message"`
	UserID  int      `json:"user_id" example:"2"`
	Token   string   `json:"access_token"`
	Roles   []string `json:"roles" example:"user"`
}
