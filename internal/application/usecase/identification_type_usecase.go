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

// IdentificationTypeUseCase aplica reglas de negocio para el catálogo global
// de tipos de identificación. La administración es exclusiva de "Super Admin".
type IdentificationTypeUseCase struct {
	repo repository.IdentificationTypeRepository
}

// NewIdentificationTypeUseCase construye el caso de uso.
func NewIdentificationTypeUseCase(repo repository.IdentificationTypeRepository) *IdentificationTypeUseCase {
	return &IdentificationTypeUseCase{repo: repo}
}

// Create crea un tipo de identificación. Solo "Super Admin"; código único.
func (uc *IdentificationTypeUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateIdentificationTypeRequest) (*dto.IdentificationTypeResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code", domain.ErrDuplicate)
	}
	now := time.Now()
	it := &entity.IdentificationType{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	out := dto.NewIdentificationTypeResponse(it)
	return &out, nil
}

// GetByID obtiene un tipo de identificación.
func (uc *IdentificationTypeUseCase) GetByID(ctx context.Context, id string) (*dto.IdentificationTypeResponse, error) {
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewIdentificationTypeResponse(it)
	return &out, nil
}

// List lista tipos de identificación con filtros y paginación.
func (uc *IdentificationTypeUseCase) List(ctx context.Context, q dto.ListIdentificationTypesQuery) (*dto.ListResponse[dto.IdentificationTypeResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.IdentificationTypeFilter{
		ListParams:   params,
		IncludeStats: q.IncludeStats,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.IdentificationTypeResponse, 0, len(list))
	for _, it := range list {
		data = append(data, dto.NewIdentificationTypeResponse(it))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente un tipo de identificación. Solo "Super Admin".
// Un patch vacío devuelve la fila sin cambios.
func (uc *IdentificationTypeUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateIdentificationTypeRequest) (*dto.IdentificationTypeResponse, error) {
	if !actor.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Code != nil {
		existing, err := uc.repo.GetByCode(ctx, *in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: code", domain.ErrDuplicate)
		}
	}
	it, err := uc.repo.Update(ctx, id, repository.IdentificationTypePatch{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewIdentificationTypeResponse(it)
	return &out, nil
}

// Remove desactiva un tipo de identificación. Solo "Super Admin"; bloqueado
// mientras existan personas activas de ese tipo.
func (uc *IdentificationTypeUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if it == nil {
		return domain.ErrNotFound
	}
	persons, err := uc.repo.CountActivePersons(ctx, id)
	if err != nil {
		return err
	}
	if persons > 0 {
		return fmt.Errorf("%w: el tipo tiene personas activas", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id)
}
