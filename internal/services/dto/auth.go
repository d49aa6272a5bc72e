package dto

// ======================
// Auth DTOs
// ======================

type LoginRequest struct {
	// Login accepts either a username or an email address.
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsHelper bool   `json:"is_helper"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ActorID      string `json:"actor_id"`
	Role         string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
