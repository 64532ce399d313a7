package dto

import "time"

// CreateCompanyRequest entrada para crear una compañía.
type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Code string `json:"code" validate:"required,min=1,max=255"`
	RFC  string `json:"rfc" validate:"omitempty,max=255"`
}

// UpdateCompanyRequest entrada para actualizar una compañía.
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Code     string `json:"code" validate:"required,min=1,max=255"`
	RFC      string `json:"rfc" validate:"omitempty,max=255"`
	IsActive bool   `json:"is_active"`
}

// CompanyResponse salida de una compañía.
type CompanyResponse struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Code     string     `json:"code"`
	RFC      string     `json:"rfc,omitempty"`
	IsActive bool       `json:"is_active"`
	CreateAt time.Time  `json:"create_at"`
	UpdateAt *time.Time `json:"update_at,omitempty"`
}
