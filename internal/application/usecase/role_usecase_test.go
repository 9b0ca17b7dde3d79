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

const roleID = "cccccccc-0000-0000-0000-000000000001"

func TestRoleCreateRequiresSuperAdmin(t *testing.T) {
	uc := usecase.NewRoleUseCase(&fakeRoleRepo{})

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateRoleRequest{Name: "Auditor"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, out)
}

func TestRoleCreateDuplicateName(t *testing.T) {
	repo := &fakeRoleRepo{byName: map[string]*entity.Role{
		"Auditor": {ID: roleID, Name: "Auditor"},
	}}
	uc := usecase.NewRoleUseCase(repo)

	out, err := uc.Create(context.Background(), superAdmin(), dto.CreateRoleRequest{Name: "Auditor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, out)
}

func TestRoleRemoveSystemRoleProtected(t *testing.T) {
	repo := &fakeRoleRepo{byID: map[string]*entity.Role{
		roleID: {ID: roleID, Name: entity.RoleCashier, IsActive: true},
	}}
	uc := usecase.NewRoleUseCase(repo)

	err := uc.Remove(context.Background(), superAdmin(), roleID)
	assert.ErrorIs(t, err, domain.ErrConflict, "los roles del sistema no se eliminan")
	assert.Empty(t, repo.deletedIDs)
}

func TestRoleRemoveBlockedByActiveUsers(t *testing.T) {
	repo := &fakeRoleRepo{
		byID:        map[string]*entity.Role{roleID: {ID: roleID, Name: "Auditor", IsActive: true}},
		activeUsers: 3,
	}
	uc := usecase.NewRoleUseCase(repo)

	err := uc.Remove(context.Background(), superAdmin(), roleID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, repo.deletedIDs)
}

func TestRoleRemoveOK(t *testing.T) {
	repo := &fakeRoleRepo{
		byID: map[string]*entity.Role{roleID: {ID: roleID, Name: "Auditor", IsActive: true}},
	}
	uc := usecase.NewRoleUseCase(repo)

	require.NoError(t, uc.Remove(context.Background(), superAdmin(), roleID))
	assert.Equal(t, []string{roleID}, repo.deletedIDs)
}

func TestRoleUpdateRenameSystemRoleBlocked(t *testing.T) {
	repo := &fakeRoleRepo{byID: map[string]*entity.Role{
		roleID: {ID: roleID, Name: entity.RoleAdmin, IsActive: true},
	}}
	uc := usecase.NewRoleUseCase(repo)

	out, err := uc.Update(context.Background(), superAdmin(), roleID, dto.UpdateRoleRequest{
		Name: strPtr("Gerente"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, out)
}
