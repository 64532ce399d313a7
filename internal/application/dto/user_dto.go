package dto

import "time"

// RegisterRequest entrada para registrar un usuario (password en texto,
// se hashea en el caso de uso).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,max=100"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida del login: token JWT, datos públicos del usuario y mensaje.
type LoginResponse struct {
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
	Message string        `json:"message"`
}
