package entity

import "time"

// User representa una credencial de la aplicación.
// Username es único (comparación sin mayúsculas ni espacios laterales).
type User struct {
	ID           string // uuid
	Username     string
	Name         string
	PasswordHash string // bcrypt, nunca sale del dominio
	Role         string // ver constantes Role*
	CreatedAt    time.Time
}
