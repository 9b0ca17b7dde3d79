package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateIdentificationTypeRequest entrada para crear un tipo de identificación.
type CreateIdentificationTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Code        string  `json:"code" validate:"required,min=1,max=10"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

// UpdateIdentificationTypeRequest entrada de actualización parcial.
type UpdateIdentificationTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=10"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	IsActive    *bool   `json:"isActive"`
}

// ListIdentificationTypesQuery filtros de listado de tipos de identificación.
type ListIdentificationTypesQuery struct {
	ListQuery
	IncludeStats bool `query:"includeStats"`
}

// IdentificationTypeResponse salida de un tipo de identificación.
type IdentificationTypeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	PersonsCount *int      `json:"personsCount,omitempty"`
}

// NewIdentificationTypeResponse mapea la entidad a su representación pública.
func NewIdentificationTypeResponse(t *entity.IdentificationType) IdentificationTypeResponse {
	return IdentificationTypeResponse{
		ID:           t.ID,
		Name:         t.Name,
		Code:         t.Code,
		Description:  t.Description,
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		PersonsCount: t.PersonsCount,
	}
}
