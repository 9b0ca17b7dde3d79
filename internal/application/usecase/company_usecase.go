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
)

// CompanyUseCase aplica reglas de negocio para compañías.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una compañía. Cualquier usuario autenticado puede crearla.
// Devuelve domain.ErrDuplicate si el NIT ya pertenece a una compañía activa.
func (uc *CompanyUseCase) Create(ctx context.Context, _ *entity.AuthUser, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.TaxID != nil {
		existing, err := uc.repo.GetByTaxID(ctx, *in.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: taxId", domain.ErrDuplicate)
		}
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// GetByID obtiene una compañía visible para el actor.
func (uc *CompanyUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string, includeStats bool) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter(), includeStats)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// List lista compañías con filtros y paginación. Los no-Super-Admin solo ven
// la propia; sin filtro isActive explícito se listan solo las activas.
func (uc *CompanyUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListCompaniesQuery) (*dto.ListResponse[dto.CompanyResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.CompanyFilter{
		ListParams:     params,
		ScopeCompanyID: actor.ScopeFilter(),
		IncludeStats:   q.IncludeStats,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		data = append(data, dto.NewCompanyResponse(c))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente una compañía. Los no-Super-Admin solo la propia.
// Un patch vacío devuelve la fila sin cambios.
func (uc *CompanyUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !actor.CanAccessCompany(id) {
		return nil, domain.ErrNotFound
	}
	if in.TaxID != nil {
		existing, err := uc.repo.GetByTaxID(ctx, *in.TaxID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: taxId", domain.ErrDuplicate)
		}
	}
	company, err := uc.repo.Update(ctx, id, repository.CompanyPatch{
		Name:     in.Name,
		TaxID:    in.TaxID,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		IsActive: in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Remove desactiva una compañía. Solo "Super Admin"; bloqueado mientras la
// compañía tenga tiendas o usuarios activos.
func (uc *CompanyUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id, "", false)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	stores, users, err := uc.repo.CountActiveDependents(ctx, id)
	if err != nil {
		return err
	}
	if stores > 0 || users > 0 {
		return fmt.Errorf("%w: la compañía tiene tiendas o usuarios activos", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id)
}

// defaultActive restringe a filas activas cuando el filtro no viene explícito.
func defaultActive(p *repository.ListParams) {
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
}
