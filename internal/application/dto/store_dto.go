package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

// CreateStoreRequest entrada para crear una tienda. CompanyID solo es
// efectivo para "Super Admin"; el resto opera sobre su propia compañía.
type CreateStoreRequest struct {
	CompanyID string  `json:"companyId" validate:"omitempty,uuid4"`
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	Code      string  `json:"code" validate:"required,min=1,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=300"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

// UpdateStoreRequest entrada de actualización parcial de una tienda.
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Code     *string `json:"code" validate:"omitempty,min=1,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=300"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"isActive"`
}

// ListStoresQuery filtros de listado de tiendas.
type ListStoresQuery struct {
	ListQuery
	CompanyID      string `query:"companyId"`
	IncludeCompany bool   `query:"includeCompany"`
	IncludeStats   bool   `query:"includeStats"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CompanyName *string   `json:"companyName,omitempty"`
	UsersCount  *int      `json:"usersCount,omitempty"`
}

// NewStoreResponse mapea la entidad a su representación pública.
func NewStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		Code:        s.Code,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		CompanyName: s.CompanyName,
		UsersCount:  s.UsersCount,
	}
}
