package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
)

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page  int `query:"page" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// DefaultPage aplica valores por defecto si Page/Limit son cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset traduce la página a OFFSET de SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListResponse envoltura paginada común a todos los listados.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewListResponse construye la envoltura garantizando data = [] y no null.
func NewListResponse[T any](data []T, total int, p PageRequest) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: total, Page: p.Page, Limit: p.Limit}
}

// ListQuery filtros comunes de listado. Las fechas llegan como YYYY-MM-DD.
type ListQuery struct {
	Search      string `query:"search"`
	IsActive    *bool  `query:"isActive"`
	CreatedFrom string `query:"createdFrom"`
	CreatedTo   string `query:"createdTo"`
	SortBy      string `query:"sortBy"`
	SortOrder   string `query:"sortOrder"`
	PageRequest
}

// ToListParams normaliza la consulta hacia los filtros de repositorio.
// Devuelve domain.ErrInvalidInput si alguna fecha no parsea.
func (q *ListQuery) ToListParams() (repository.ListParams, error) {
	q.DefaultPage()
	p := repository.ListParams{
		Search:    strings.TrimSpace(q.Search),
		IsActive:  q.IsActive,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
		Offset:    q.Offset(),
	}
	if q.CreatedFrom != "" {
		t, err := time.Parse("2006-01-02", q.CreatedFrom)
		if err != nil {
			return p, fmt.Errorf("%w: createdFrom", domain.ErrInvalidInput)
		}
		p.CreatedFrom = &t
	}
	if q.CreatedTo != "" {
		t, err := time.Parse("2006-01-02", q.CreatedTo)
		if err != nil {
			return p, fmt.Errorf("%w: createdTo", domain.ErrInvalidInput)
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		p.CreatedTo = &end
	}
	return p, nil
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
