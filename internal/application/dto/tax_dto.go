package dto

import (
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateTaxRequest entrada para crear un impuesto. Rate es la fracción
// (0.19 para IVA 19%).
type CreateTaxRequest struct {
	Name string          `json:"name" validate:"required,min=1,max=100"`
	Rate decimal.Decimal `json:"rate"`
}

// UpdateTaxRequest entrada de actualización parcial de un impuesto.
type UpdateTaxRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Rate     *decimal.Decimal `json:"rate"`
	IsActive *bool            `json:"isActive"`
}

// ListTaxesQuery filtros de listado de impuestos.
type ListTaxesQuery struct {
	ListQuery
}

// TaxResponse salida de un impuesto.
type TaxResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"companyId"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewTaxResponse mapea la entidad a su representación pública.
func NewTaxResponse(t *entity.Tax) TaxResponse {
	return TaxResponse{
		ID:        t.ID,
		CompanyID: t.CompanyID,
		Name:      t.Name,
		Rate:      t.Rate,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
