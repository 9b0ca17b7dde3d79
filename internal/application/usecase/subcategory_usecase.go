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

// SubcategoryUseCase aplica reglas de negocio para subcategorías de producto.
type SubcategoryUseCase struct {
	repo         repository.SubcategoryRepository
	categoryRepo repository.CategoryRepository
}

// NewSubcategoryUseCase construye el caso de uso con sus puertos de persistencia.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, categoryRepo repository.CategoryRepository) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea una subcategoría. La categoría debe pertenecer a la compañía
// del actor y el nombre ser único dentro de la categoría.
func (uc *SubcategoryUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}
	existing, err := uc.repo.GetByCategoryAndName(ctx, actor.CompanyID, in.CategoryID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
	}
	now := time.Now()
	sub := &entity.Subcategory{
		ID:          uuid.New().String(),
		CompanyID:   actor.CompanyID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	out := dto.NewSubcategoryResponse(sub)
	return &out, nil
}

// GetByID obtiene una subcategoría de la compañía del actor.
func (uc *SubcategoryUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.SubcategoryResponse, error) {
	sub, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewSubcategoryResponse(sub)
	return &out, nil
}

// List lista subcategorías de la compañía del actor.
func (uc *SubcategoryUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListSubcategoriesQuery) (*dto.ListResponse[dto.SubcategoryResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.SubcategoryFilter{
		ListParams: params,
		CompanyID:  actor.CompanyID,
		CategoryID: q.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		data = append(data, dto.NewSubcategoryResponse(s))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente una subcategoría. Un patch vacío es un error
// de entrada; mover de categoría revalida pertenencia y unicidad.
func (uc *SubcategoryUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	patch := repository.SubcategoryPatch{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if patch.IsZero() {
		return nil, domain.ErrNoFields
	}
	current, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	categoryID := current.CategoryID
	if in.CategoryID != nil {
		categoryID = *in.CategoryID
		category, err := uc.categoryRepo.GetByID(ctx, categoryID, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.IsActive {
			return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
		}
	}
	name := current.Name
	if in.Name != nil {
		name = *in.Name
	}
	if categoryID != current.CategoryID || name != current.Name {
		existing, err := uc.repo.GetByCategoryAndName(ctx, actor.CompanyID, categoryID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
		}
	}
	sub, err := uc.repo.Update(ctx, id, actor.CompanyID, patch)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewSubcategoryResponse(sub)
	return &out, nil
}

// Remove desactiva una subcategoría. Bloqueado mientras tenga productos activos.
func (uc *SubcategoryUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	sub, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrNotFound
	}
	products, err := uc.repo.CountActiveProducts(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return fmt.Errorf("%w: la subcategoría tiene productos activos", domain.ErrConflict)
	}
	return uc.repo.SoftDelete(ctx, id, actor.CompanyID)
}
