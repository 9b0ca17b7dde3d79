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

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCompanyCreateByAnyAuthenticatedUser(t *testing.T) {
	repo := &fakeCompanyRepo{byTaxID: map[string]*entity.Company{}}
	uc := usecase.NewCompanyUseCase(repo)

	// Crear compañía no exige Super Admin; basta estar autenticado.
	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Acme", repo.created[0].Name)
}

func TestCompanyCreateWithoutTaxID(t *testing.T) {
	repo := &fakeCompanyRepo{byTaxID: map[string]*entity.Company{}}
	uc := usecase.NewCompanyUseCase(repo)

	// El NIT es opcional; sin él no se consulta unicidad.
	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateCompanyRequest{Name: "Sin NIT"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Nil(t, out.TaxID)
}

func TestCompanyCreateDuplicateTaxID(t *testing.T) {
	repo := &fakeCompanyRepo{
		byTaxID: map[string]*entity.Company{"900123456": {ID: companyB}},
	}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(context.Background(), superAdmin(), dto.CreateCompanyRequest{
		Name:  "Nueva",
		TaxID: strPtr("900123456"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, out)
	assert.Empty(t, repo.created)
}

func TestCompanyCreateOK(t *testing.T) {
	repo := &fakeCompanyRepo{byTaxID: map[string]*entity.Company{}}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(context.Background(), superAdmin(), dto.CreateCompanyRequest{
		Name:  "Tiendas Andinas",
		TaxID: strPtr("900123456"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.IsActive, "una compañía nueva nace activa")
	assert.NotEmpty(t, out.ID)
	require.Len(t, repo.created, 1)
}

func TestCompanyListScoping(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.List(context.Background(), admin(companyB), dto.ListCompaniesQuery{})
	require.NoError(t, err)
	assert.Equal(t, companyB, repo.lastFilter.ScopeCompanyID,
		"un admin queda restringido a su compañía")

	_, err = uc.List(context.Background(), superAdmin(), dto.ListCompaniesQuery{})
	require.NoError(t, err)
	assert.Empty(t, repo.lastFilter.ScopeCompanyID, "Super Admin lista sin restricción")
}

func TestCompanyListDefaultsToActive(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := usecase.NewCompanyUseCase(repo)

	_, err := uc.List(context.Background(), superAdmin(), dto.ListCompaniesQuery{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.IsActive, "sin filtro explícito se listan solo activas")
	assert.True(t, *repo.lastFilter.IsActive)

	q := dto.ListCompaniesQuery{}
	q.IsActive = boolPtr(false)
	_, err = uc.List(context.Background(), superAdmin(), q)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.IsActive)
	assert.False(t, *repo.lastFilter.IsActive, "el filtro explícito se respeta")
}

func TestCompanyListPaginationDefaults(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.List(context.Background(), superAdmin(), dto.ListCompaniesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)
	assert.NotNil(t, out.Data, "data serializa como [] y no null")

	q := dto.ListCompaniesQuery{}
	q.Page = 3
	q.Limit = 500
	_, err = uc.List(context.Background(), superAdmin(), q)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastFilter.Limit, "limit se recorta a 100")
	assert.Equal(t, 200, repo.lastFilter.Offset)
}

func TestCompanyUpdateOutsideScope(t *testing.T) {
	repo := &fakeCompanyRepo{byID: map[string]*entity.Company{
		companyB: {ID: companyB, Name: "Otra", IsActive: true},
	}}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Update(context.Background(), admin(companyA), companyB, dto.UpdateCompanyRequest{
		Name: strPtr("Renombrada"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "fuera del scope se responde como inexistente")
	assert.Nil(t, out)
}

func TestCompanyRemoveBlockedByDependents(t *testing.T) {
	repo := &fakeCompanyRepo{
		byID:         map[string]*entity.Company{companyB: {ID: companyB, IsActive: true}},
		activeStores: 2,
	}
	uc := usecase.NewCompanyUseCase(repo)

	err := uc.Remove(context.Background(), superAdmin(), companyB)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, repo.deletedIDs)
}

func TestCompanyRemoveOK(t *testing.T) {
	repo := &fakeCompanyRepo{
		byID: map[string]*entity.Company{companyB: {ID: companyB, IsActive: true}},
	}
	uc := usecase.NewCompanyUseCase(repo)

	require.NoError(t, uc.Remove(context.Background(), superAdmin(), companyB))
	assert.Equal(t, []string{companyB}, repo.deletedIDs)
}

func TestCompanyRemoveRequiresSuperAdmin(t *testing.T) {
	uc := usecase.NewCompanyUseCase(&fakeCompanyRepo{})

	err := uc.Remove(context.Background(), admin(companyA), companyA)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
