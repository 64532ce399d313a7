package entity

import "time"

// Company representa una compañía del catálogo. Code es único;
// UpdateAt se estampa en cada mutación.
type Company struct {
	ID       int64
	Name     string
	Code     string
	RFC      string // opcional (registro fiscal)
	IsActive bool
	CreateAt time.Time
	UpdateAt *time.Time
}
