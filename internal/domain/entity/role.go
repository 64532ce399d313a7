package entity

import "time"

// Nombres de rol usados por la autorización.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role representa un rol del catálogo de roles.
type Role struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
