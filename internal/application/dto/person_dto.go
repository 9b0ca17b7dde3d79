package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreatePersonRequest entrada para crear una persona. BirthDate en YYYY-MM-DD.
type CreatePersonRequest struct {
	IdentificationTypeID string  `json:"identificationTypeId" validate:"required,uuid4"`
	IdentificationNumber string  `json:"identificationNumber" validate:"required,min=1,max=30"`
	FirstName            string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName             string  `json:"lastName" validate:"required,min=1,max=100"`
	Email                *string `json:"email" validate:"omitempty,email"`
	Phone                *string `json:"phone" validate:"omitempty,max=20"`
	Address              *string `json:"address" validate:"omitempty,max=300"`
	BirthDate            *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePersonRequest entrada de actualización parcial de una persona.
type UpdatePersonRequest struct {
	IdentificationTypeID *string `json:"identificationTypeId" validate:"omitempty,uuid4"`
	IdentificationNumber *string `json:"identificationNumber" validate:"omitempty,min=1,max=30"`
	FirstName            *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName             *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email                *string `json:"email" validate:"omitempty,email"`
	Phone                *string `json:"phone" validate:"omitempty,max=20"`
	Address              *string `json:"address" validate:"omitempty,max=300"`
	BirthDate            *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive             *bool   `json:"isActive"`
}

// ListPersonsQuery filtros de listado de personas.
type ListPersonsQuery struct {
	ListQuery
	IdentificationTypeID string `query:"identificationTypeId"`
	IncludeType          bool   `query:"includeType"`
}

// PersonResponse salida de una persona.
type PersonResponse struct {
	ID                     string     `json:"id"`
	IdentificationTypeID   string     `json:"identificationTypeId"`
	IdentificationNumber   string     `json:"identificationNumber"`
	FirstName              string     `json:"firstName"`
	LastName               string     `json:"lastName"`
	Email                  *string    `json:"email"`
	Phone                  *string    `json:"phone"`
	Address                *string    `json:"address"`
	BirthDate              *time.Time `json:"birthDate"`
	IsActive               bool       `json:"isActive"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
	IdentificationTypeName *string    `json:"identificationTypeName,omitempty"`
	IdentificationTypeCode *string    `json:"identificationTypeCode,omitempty"`
}

// NewPersonResponse mapea la entidad a su representación pública.
func NewPersonResponse(p *entity.Person) PersonResponse {
	return PersonResponse{
		ID:                     p.ID,
		IdentificationTypeID:   p.IdentificationTypeID,
		IdentificationNumber:   p.IdentificationNumber,
		FirstName:              p.FirstName,
		LastName:               p.LastName,
		Email:                  p.Email,
		Phone:                  p.Phone,
		Address:                p.Address,
		BirthDate:              p.BirthDate,
		IsActive:               p.IsActive,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
		IdentificationTypeName: p.IdentificationTypeName,
		IdentificationTypeCode: p.IdentificationTypeCode,
	}
}
