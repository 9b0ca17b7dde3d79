package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

const (
	productID     = "33333333-0000-0000-0000-000000000001"
	subcategoryID = "22222222-0000-0000-0000-000000000001"
)

type productDeps struct {
	products      *fakeProductRepo
	categories    *fakeCategoryRepo
	subcategories *fakeSubcategoryRepo
	uc            *usecase.ProductUseCase
}

func newProductDeps() productDeps {
	products := &fakeProductRepo{
		byID:  map[string]*entity.Product{},
		bySKU: map[string]*entity.Product{},
	}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		categoryID: {ID: categoryID, CompanyID: companyA, Name: "Bebidas", IsActive: true},
	}}
	subcategories := &fakeSubcategoryRepo{byID: map[string]*entity.Subcategory{
		subcategoryID: {ID: subcategoryID, CompanyID: companyA, CategoryID: categoryID, Name: "Gaseosas", IsActive: true},
	}}
	return productDeps{
		products:      products,
		categories:    categories,
		subcategories: subcategories,
		uc:            usecase.NewProductUseCase(products, categories, subcategories),
	}
}

func TestProductCreateOK(t *testing.T) {
	d := newProductDeps()

	out, err := d.uc.Create(context.Background(), admin(companyA), dto.CreateProductRequest{
		CategoryID:    categoryID,
		SubcategoryID: strPtr(subcategoryID),
		Name:          "Cola 350ml",
		SKU:           "COL-350",
		Price:         decimal.NewFromFloat(2.50),
		Cost:          decimal.NewFromFloat(1.10),
		Stock:         24,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, d.products.created, 1)
	assert.Equal(t, companyA, d.products.created[0].CompanyID)
	assert.True(t, d.products.created[0].IsActive)
}

func TestProductCreateNegativePrice(t *testing.T) {
	d := newProductDeps()

	_, err := d.uc.Create(context.Background(), admin(companyA), dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Cola 350ml",
		SKU:        "COL-350",
		Price:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, d.products.created)
}

func TestProductCreateSubcategoryFromOtherCategory(t *testing.T) {
	d := newProductDeps()
	otherCategory := "11111111-0000-0000-0000-000000000002"
	d.categories.byID[otherCategory] = &entity.Category{ID: otherCategory, CompanyID: companyA, IsActive: true}

	_, err := d.uc.Create(context.Background(), admin(companyA), dto.CreateProductRequest{
		CategoryID:    otherCategory,
		SubcategoryID: strPtr(subcategoryID),
		Name:          "Cola 350ml",
		SKU:           "COL-350",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateDuplicateSKU(t *testing.T) {
	d := newProductDeps()
	d.products.bySKU[companyA+"|COL-350"] = &entity.Product{ID: productID, CompanyID: companyA, SKU: "COL-350"}

	_, err := d.uc.Create(context.Background(), admin(companyA), dto.CreateProductRequest{
		CategoryID: categoryID,
		Name:       "Cola 350ml",
		SKU:        "COL-350",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductEmptyUpdateRejected(t *testing.T) {
	d := newProductDeps()
	d.products.byID[productID] = &entity.Product{ID: productID, CompanyID: companyA, CategoryID: categoryID, IsActive: true}

	out, err := d.uc.Update(context.Background(), admin(companyA), productID, dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFields)
	assert.Nil(t, out)
	assert.Nil(t, d.products.updatedPatch)
}

func TestProductUpdateSKUDuplicate(t *testing.T) {
	d := newProductDeps()
	d.products.byID[productID] = &entity.Product{ID: productID, CompanyID: companyA, CategoryID: categoryID, SKU: "COL-350", IsActive: true}
	d.products.bySKU[companyA+"|COL-500"] = &entity.Product{ID: "otro", CompanyID: companyA, SKU: "COL-500"}

	_, err := d.uc.Update(context.Background(), admin(companyA), productID, dto.UpdateProductRequest{SKU: strPtr("COL-500")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRemoveIsHardDelete(t *testing.T) {
	d := newProductDeps()
	d.products.byID[productID] = &entity.Product{ID: productID, CompanyID: companyA, CategoryID: categoryID, IsActive: true}

	err := d.uc.Remove(context.Background(), admin(companyA), productID)
	require.NoError(t, err)
	assert.Equal(t, []string{productID}, d.products.deletedIDs)
}

func TestProductRemoveOutsideCompany(t *testing.T) {
	d := newProductDeps()
	d.products.byID[productID] = &entity.Product{ID: productID, CompanyID: companyB, CategoryID: categoryID, IsActive: true}

	err := d.uc.Remove(context.Background(), admin(companyA), productID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, d.products.deletedIDs)
}

func TestProductListScopedToActorCompany(t *testing.T) {
	d := newProductDeps()

	_, err := d.uc.List(context.Background(), admin(companyA), dto.ListProductsQuery{CategoryID: categoryID})
	require.NoError(t, err)
	assert.Equal(t, companyA, d.products.lastFilter.CompanyID)
	assert.Equal(t, categoryID, d.products.lastFilter.CategoryID)
	require.NotNil(t, d.products.lastFilter.IsActive, "sin filtro explícito el listado es solo activos")
	assert.True(t, *d.products.lastFilter.IsActive)
}
