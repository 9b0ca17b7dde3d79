package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	TaxID   *string `json:"taxId" validate:"omitempty,min=1,max=20"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Address *string `json:"address" validate:"omitempty,max=300"`
}

// UpdateCompanyRequest entrada de actualización parcial de una empresa.
type UpdateCompanyRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	TaxID    *string `json:"taxId" validate:"omitempty,min=1,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=300"`
	IsActive *bool   `json:"isActive"`
}

// ListCompaniesQuery filtros de listado de empresas.
type ListCompaniesQuery struct {
	ListQuery
	IncludeStats bool `query:"includeStats"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaxID       *string   `json:"taxId"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	StoresCount *int      `json:"storesCount,omitempty"`
	UsersCount  *int      `json:"usersCount,omitempty"`
}

// NewCompanyResponse mapea la entidad a su representación pública.
func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		StoresCount: c.StoresCount,
		UsersCount:  c.UsersCount,
	}
}
