package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// taxRateMax tope de la fracción de impuesto (100%).
var taxRateMax = decimal.NewFromInt(1)

// TaxUseCase aplica reglas de negocio para impuestos por compañía.
type TaxUseCase struct {
	repo repository.TaxRepository
}

// NewTaxUseCase construye el caso de uso.
func NewTaxUseCase(repo repository.TaxRepository) *TaxUseCase {
	return &TaxUseCase{repo: repo}
}

// Create crea un impuesto en la compañía del actor. Nombre único por compañía
// y tasa en [0, 1].
func (uc *TaxUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateTaxRequest) (*dto.TaxResponse, error) {
	if err := validateRate(in.Rate); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCompanyAndName(ctx, actor.CompanyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
	}
	now := time.Now()
	tax := &entity.Tax{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		Name:      in.Name,
		Rate:      in.Rate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, tax); err != nil {
		return nil, err
	}
	out := dto.NewTaxResponse(tax)
	return &out, nil
}

// GetByID obtiene un impuesto de la compañía del actor.
func (uc *TaxUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.TaxResponse, error) {
	tax, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTaxResponse(tax)
	return &out, nil
}

// List lista impuestos de la compañía del actor.
func (uc *TaxUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListTaxesQuery) (*dto.ListResponse[dto.TaxResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.TaxFilter{
		ListParams: params,
		CompanyID:  actor.CompanyID,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.TaxResponse, 0, len(list))
	for _, t := range list {
		data = append(data, dto.NewTaxResponse(t))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente un impuesto. Un patch vacío es un error de
// entrada.
func (uc *TaxUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateTaxRequest) (*dto.TaxResponse, error) {
	patch := repository.TaxPatch{
		Name:     in.Name,
		Rate:     in.Rate,
		IsActive: in.IsActive,
	}
	if patch.IsZero() {
		return nil, domain.ErrNoFields
	}
	if in.Rate != nil {
		if err := validateRate(*in.Rate); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		existing, err := uc.repo.GetByCompanyAndName(ctx, actor.CompanyID, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
		}
	}
	tax, err := uc.repo.Update(ctx, id, actor.CompanyID, patch)
	if err != nil {
		return nil, err
	}
	if tax == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewTaxResponse(tax)
	return &out, nil
}

// Remove elimina físicamente un impuesto de la compañía del actor.
func (uc *TaxUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	tax, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if tax == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id, actor.CompanyID)
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(taxRateMax) {
		return fmt.Errorf("%w: rate debe estar entre 0 y 1", domain.ErrInvalidInput)
	}
	return nil
}
