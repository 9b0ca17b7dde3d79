package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tax impuesto configurable por compañía. Nombre único por compañía.
type Tax struct {
	ID        string
	CompanyID string
	Name      string
	Rate      decimal.Decimal // 0.19 para IVA 19%
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
