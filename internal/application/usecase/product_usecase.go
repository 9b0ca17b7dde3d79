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

// ProductUseCase aplica reglas de negocio para el catálogo de productos.
type ProductUseCase struct {
	repo            repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
}

// NewProductUseCase construye el caso de uso con sus puertos de persistencia.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, subcategoryRepo repository.SubcategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, subcategoryRepo: subcategoryRepo}
}

// Create crea un producto en la compañía del actor. La categoría debe
// pertenecer a la compañía, la subcategoría (opcional) a esa categoría y el
// SKU ser único por compañía.
func (uc *ProductUseCase) Create(ctx context.Context, actor *entity.AuthUser, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || in.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: price y cost no pueden ser negativos", domain.ErrInvalidInput)
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsActive {
		return nil, fmt.Errorf("%w: categoría", domain.ErrNotFound)
	}
	if in.SubcategoryID != nil {
		sub, err := uc.subcategoryRepo.GetByID(ctx, *in.SubcategoryID, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		if sub == nil || !sub.IsActive {
			return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
		}
		if sub.CategoryID != in.CategoryID {
			return nil, fmt.Errorf("%w: la subcategoría no pertenece a la categoría", domain.ErrInvalidInput)
		}
	}
	existing, err := uc.repo.GetByCompanyAndSKU(ctx, actor.CompanyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: sku", domain.ErrDuplicate)
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		CompanyID:     actor.CompanyID,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Price:         in.Price,
		Cost:          in.Cost,
		Stock:         in.Stock,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto de la compañía del actor.
func (uc *ProductUseCase) GetByID(ctx context.Context, actor *entity.AuthUser, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// List lista productos de la compañía del actor.
func (uc *ProductUseCase) List(ctx context.Context, actor *entity.AuthUser, q dto.ListProductsQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	params, err := q.ToListParams()
	if err != nil {
		return nil, err
	}
	defaultActive(&params)
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		ListParams:    params,
		CompanyID:     actor.CompanyID,
		CategoryID:    q.CategoryID,
		SubcategoryID: q.SubcategoryID,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		data = append(data, dto.NewProductResponse(p))
	}
	out := dto.NewListResponse(data, total, q.PageRequest)
	return &out, nil
}

// Update actualiza parcialmente un producto. Un patch vacío es un error de
// entrada; cambios de categoría/subcategoría/SKU se revalidan.
func (uc *ProductUseCase) Update(ctx context.Context, actor *entity.AuthUser, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := repository.ProductPatch{
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Price:         in.Price,
		Cost:          in.Cost,
		Stock:         in.Stock,
		IsActive:      in.IsActive,
	}
	if patch.IsZero() {
		return nil, domain.ErrNoFields
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: cost no puede ser negativo", domain.ErrInvalidInput)
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
	subID := current.SubcategoryID
	if in.SubcategoryID != nil {
		subID = in.SubcategoryID
	}
	if subID != nil {
		sub, err := uc.subcategoryRepo.GetByID(ctx, *subID, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		if sub == nil || !sub.IsActive {
			return nil, fmt.Errorf("%w: subcategoría", domain.ErrNotFound)
		}
		if sub.CategoryID != categoryID {
			return nil, fmt.Errorf("%w: la subcategoría no pertenece a la categoría", domain.ErrInvalidInput)
		}
	}
	if in.SKU != nil && *in.SKU != current.SKU {
		existing, err := uc.repo.GetByCompanyAndSKU(ctx, actor.CompanyID, *in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: sku", domain.ErrDuplicate)
		}
	}
	product, err := uc.repo.Update(ctx, id, actor.CompanyID, patch)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewProductResponse(product)
	return &out, nil
}

// Remove elimina físicamente un producto de la compañía del actor.
func (uc *ProductUseCase) Remove(ctx context.Context, actor *entity.AuthUser, id string) error {
	product, err := uc.repo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id, actor.CompanyID)
}
