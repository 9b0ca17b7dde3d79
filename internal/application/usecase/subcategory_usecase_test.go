package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

func newSubcategoryDeps() (*fakeSubcategoryRepo, *fakeCategoryRepo, *usecase.SubcategoryUseCase) {
	subs := &fakeSubcategoryRepo{
		byID:      map[string]*entity.Subcategory{},
		byCatName: map[string]*entity.Subcategory{},
	}
	categories := &fakeCategoryRepo{byID: map[string]*entity.Category{
		categoryID: {ID: categoryID, CompanyID: companyA, Name: "Bebidas", IsActive: true},
	}}
	return subs, categories, usecase.NewSubcategoryUseCase(subs, categories)
}

func TestSubcategoryCreateOK(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateSubcategoryRequest{
		CategoryID: categoryID,
		Name:       "Gaseosas",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, subs.created, 1)
	assert.Equal(t, companyA, subs.created[0].CompanyID)
	assert.Equal(t, categoryID, subs.created[0].CategoryID)
}

func TestSubcategoryCreateUnknownCategory(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()

	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateSubcategoryRequest{
		CategoryID: "11111111-0000-0000-0000-00000000dead",
		Name:       "Gaseosas",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, subs.created)
}

func TestSubcategoryCreateCategoryFromOtherCompany(t *testing.T) {
	subs, categories, uc := newSubcategoryDeps()
	categories.byID[categoryID].CompanyID = companyB

	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateSubcategoryRequest{
		CategoryID: categoryID,
		Name:       "Gaseosas",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, subs.created)
}

func TestSubcategoryCreateDuplicateNameInCategory(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()
	subs.byCatName[companyA+"|"+categoryID+"|Gaseosas"] = &entity.Subcategory{
		ID: subcategoryID, CompanyID: companyA, CategoryID: categoryID, Name: "Gaseosas",
	}

	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateSubcategoryRequest{
		CategoryID: categoryID,
		Name:       "Gaseosas",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSubcategoryEmptyUpdateRejected(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()
	subs.byID[subcategoryID] = &entity.Subcategory{ID: subcategoryID, CompanyID: companyA, CategoryID: categoryID, IsActive: true}

	out, err := uc.Update(context.Background(), admin(companyA), subcategoryID, dto.UpdateSubcategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFields)
	assert.Nil(t, out)
	assert.Nil(t, subs.updatedPatch)
}

func TestSubcategoryRemoveBlockedByActiveProducts(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()
	subs.byID[subcategoryID] = &entity.Subcategory{ID: subcategoryID, CompanyID: companyA, CategoryID: categoryID, IsActive: true}
	subs.activeProducts = 3

	err := uc.Remove(context.Background(), admin(companyA), subcategoryID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, subs.deletedIDs)
}

func TestSubcategoryRemoveOK(t *testing.T) {
	subs, _, uc := newSubcategoryDeps()
	subs.byID[subcategoryID] = &entity.Subcategory{ID: subcategoryID, CompanyID: companyA, CategoryID: categoryID, IsActive: true}

	err := uc.Remove(context.Background(), admin(companyA), subcategoryID)
	require.NoError(t, err)
	assert.Equal(t, []string{subcategoryID}, subs.deletedIDs)
}
