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

const taxID = "44444444-0000-0000-0000-000000000001"

func TestTaxCreateOK(t *testing.T) {
	repo := &fakeTaxRepo{byName: map[string]*entity.Tax{}}
	uc := usecase.NewTaxUseCase(repo)

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateTaxRequest{
		Name: "IVA",
		Rate: decimal.NewFromFloat(0.19),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Len(t, repo.created, 1)
	assert.Equal(t, companyA, repo.created[0].CompanyID)
}

func TestTaxCreateRateOutOfRange(t *testing.T) {
	repo := &fakeTaxRepo{byName: map[string]*entity.Tax{}}
	uc := usecase.NewTaxUseCase(repo)

	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateTaxRequest{
		Name: "IVA",
		Rate: decimal.NewFromFloat(1.19),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), admin(companyA), dto.CreateTaxRequest{
		Name: "IVA",
		Rate: decimal.NewFromFloat(-0.01),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.created)
}

func TestTaxCreateDuplicateNameInCompany(t *testing.T) {
	repo := &fakeTaxRepo{byName: map[string]*entity.Tax{
		companyA + "|IVA": {ID: taxID, CompanyID: companyA, Name: "IVA"},
	}}
	uc := usecase.NewTaxUseCase(repo)

	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateTaxRequest{
		Name: "IVA",
		Rate: decimal.NewFromFloat(0.19),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Otra compañía puede reutilizar el nombre
	out, err := uc.Create(context.Background(), admin(companyB), dto.CreateTaxRequest{
		Name: "IVA",
		Rate: decimal.NewFromFloat(0.19),
	})
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestTaxEmptyUpdateRejected(t *testing.T) {
	repo := &fakeTaxRepo{byID: map[string]*entity.Tax{
		taxID: {ID: taxID, CompanyID: companyA, Name: "IVA", IsActive: true},
	}}
	uc := usecase.NewTaxUseCase(repo)

	out, err := uc.Update(context.Background(), admin(companyA), taxID, dto.UpdateTaxRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFields)
	assert.Nil(t, out)
	assert.Nil(t, repo.updatedPatch)
}

func TestTaxUpdateRateValidated(t *testing.T) {
	repo := &fakeTaxRepo{byID: map[string]*entity.Tax{
		taxID: {ID: taxID, CompanyID: companyA, Name: "IVA", IsActive: true},
	}}
	uc := usecase.NewTaxUseCase(repo)

	bad := decimal.NewFromInt(2)
	_, err := uc.Update(context.Background(), admin(companyA), taxID, dto.UpdateTaxRequest{Rate: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, repo.updatedPatch)
}

func TestTaxRemoveIsHardDelete(t *testing.T) {
	repo := &fakeTaxRepo{byID: map[string]*entity.Tax{
		taxID: {ID: taxID, CompanyID: companyA, Name: "IVA", IsActive: true},
	}}
	uc := usecase.NewTaxUseCase(repo)

	err := uc.Remove(context.Background(), admin(companyA), taxID)
	require.NoError(t, err)
	assert.Equal(t, []string{taxID}, repo.deletedIDs)
}

func TestTaxRemoveOutsideCompany(t *testing.T) {
	repo := &fakeTaxRepo{byID: map[string]*entity.Tax{
		taxID: {ID: taxID, CompanyID: companyB, Name: "IVA", IsActive: true},
	}}
	uc := usecase.NewTaxUseCase(repo)

	err := uc.Remove(context.Background(), admin(companyA), taxID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.deletedIDs)
}
