package dto

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=8"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	IsActive bool    `json:"is_active"`
}

// SetActiveRequest body para activar o desactivar una cuenta.
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// LoginRequest entrada para login tradicional.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse salida del login con el token de acceso.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // siempre "bearer"
}
