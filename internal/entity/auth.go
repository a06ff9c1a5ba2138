package entity

type LoginRequest struct {
	Identificacion string `json:"identificacion"`
	Password       string `json:"password"`
}

type LoginResponse struct {
	Token          string `json:"token"`
	Identificacion string `json:"identificacion"`
	Role           string `json:"role"`
}
