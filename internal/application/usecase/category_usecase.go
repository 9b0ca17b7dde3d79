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

// CategoryUseCase aplica reglas de negocio para categorías de producto.
// El catálogo siempre opera sobre la compañía del actor.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría en la compañía del actor. Nombre único por compañía.
func (uc *CategoryUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByCompanyAndName(ctx, actor.CompanyID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	out := dto.NewCategoryResponse(category)
	return &out, nil
}

// GetByID obtiene una categoría de la compañía del actor.
func (uc *CategoryUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(category)
	return &out, nil
}

// List lista categorías de la compañía del actor.
func (uc *CategoryUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListCategoriesQuery) (*dto.ListResponse[dto.CategoryResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.CategoryFilter{
		ListParams: params,
		CompanyID:  actor.CompanyID,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		data = append(data, dto.NewCategoryResponse(c))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente una categoría. Un patch vacío es un error de
// entrada.
func (uc *CategoryUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	patch := repository.CategoryPatch{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if patch.IsZero() {
		return nil, domain.ErrNoFields
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
	category, err := uc.repo.Update(ctx, id, actor.CompanyID, patch)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewCategoryResponse(category)
	return &out, nil
}

// Remove desactiva una categoría. Bloqueado mientras tenga productos activos.
func (uc *CategoryUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	category, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	products, err := uc.repo.CountActiveProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return fmt.Errorf("%w: la categoría tiene productos activos", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id, actor.CompanyID)
}
