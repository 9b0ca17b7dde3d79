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

// StoreUseCase aplica reglas de negocio para tiendas.
type StoreUseCase struct {
	repo        repository.StoreRepository
	companyRepo repository.CompanyRepository
}

// NewStoreUseCase construye el caso de uso con sus puertos de persistencia.
func NewStoreUseCase(repo repository.StoreRepository, companyRepo repository.CompanyRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una tienda en la compañía efectiva del actor. El companyId del
// cuerpo solo se honra para "Super Admin". Devuelve domain.ErrDuplicate si el
// código ya existe en la compañía.
func (uc *StoreUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	companyID := actor.ResolveCompanyID(in.CompanyID)
	company, err := uc.companyRepo.GetByID(ctx, companyID, "", false)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, fmt.Errorf("%w: compañía", domain.ErrNotFound)
	}
	existing, err := uc.repo.GetByCompanyAndCode(ctx, companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code", domain.ErrDuplicate)
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	out := dto.NewStoreResponse(store)
	return &out, nil
}

// GetByID obtiene una tienda visible para el actor.
func (uc *StoreUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewStoreResponse(store)
	return &out, nil
}

// List lista tiendas visibles para el actor con filtros y paginación.
func (uc *StoreUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListStoresQuery) (*dto.ListResponse[dto.StoreResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.StoreFilter{
		ListParams:     params,
		ScopeCompanyID: actor.ScopeFilter(),
		CompanyID:      q.CompanyID,
		IncludeCompany: q.IncludeCompany,
		IncludeStats:   q.IncludeStats,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		data = append(data, dto.NewStoreResponse(s))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente una tienda del scope del actor. Un patch vacío
// devuelve la fila sin cambios.
func (uc *StoreUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != store.Code {
		existing, err := uc.repo.GetByCompanyAndCode(ctx, store.CompanyID, *in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: code", domain.ErrDuplicate)
		}
	}
	updated, err := uc.repo.Update(ctx, id, repository.StorePatch{
		Name:     in.Name,
		Code:     in.Code,
		Address:  in.Address,
		Phone:    in.Phone,
		Email:    in.Email,
		IsActive: in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewStoreResponse(updated)
	return &out, nil
}

// Remove desactiva una tienda del scope del actor. Bloqueado mientras la
// compañía dueña tenga usuarios activos.
func (uc *StoreUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	store, err := uc.repo.GetByID(ctx, id, actor.ScopeFilter())
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	users, err := uc.repo.CountActiveUsers(ctx, id)
	if err != nil {
		return err
	}
	if users > 0 {
		return fmt.Errorf("%w: la compañía de la tienda tiene usuarios activos", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id)
}
