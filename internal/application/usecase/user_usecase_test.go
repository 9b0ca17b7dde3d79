package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
)

const (
	personID   = "dddddddd-0000-0000-0000-000000000001"
	userRoleID = "eeeeeeee-0000-0000-0000-000000000001"
	userID     = "ffffffff-0000-0000-0000-000000000001"
)

func newUserDeps() (*fakeUserRepo, *fakePersonRepo, *fakeCompanyRepo, *fakeRoleRepo) {
	users := &fakeUserRepo{
		byID:       map[string]*entity.User{},
		byUsername: map[string]*entity.User{},
		byPersonID: map[string]*entity.User{},
	}
	persons := &fakePersonRepo{byID: map[string]*entity.Person{
		personID: {ID: personID, IsActive: true},
	}}
	companies := &fakeCompanyRepo{byID: map[string]*entity.Company{
		companyA: {ID: companyA, IsActive: true},
		companyB: {ID: companyB, IsActive: true},
	}}
	roles := &fakeRoleRepo{byID: map[string]*entity.Role{
		userRoleID: {ID: userRoleID, Name: "Cashier", IsActive: true},
	}}
	return users, persons, companies, roles
}

func TestUserCreateHashesPassword(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateUserRequest{
		PersonID: personID,
		RoleID:   userRoleID,
		Username: "cajero1",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, users.created, 1)
	created := users.created[0]
	assert.NotEqual(t, "secreto123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secreto123")))
	assert.Equal(t, companyA, created.CompanyID, "sin companyId el usuario cae en la compañía del actor")
}

func TestUserCreateCompanyOverrideOnlySuperAdmin(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	// Un admin que pide otra compañía queda forzado a la propia
	_, err := uc.Create(context.Background(), admin(companyA), dto.CreateUserRequest{
		PersonID:  personID,
		CompanyID: companyB,
		RoleID:    userRoleID,
		Username:  "cajero2",
		Password:  "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, companyA, users.created[0].CompanyID)

	// Super Admin sí puede elegir compañía
	users.byPersonID = map[string]*entity.User{}
	_, err = uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		PersonID:  personID,
		CompanyID: companyB,
		RoleID:    userRoleID,
		Username:  "cajero3",
		Password:  "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, companyB, users.created[1].CompanyID)
}

func TestUserCreatePersonAlreadyHasUser(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	users.byPersonID[personID] = &entity.User{ID: userID, PersonID: personID}
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateUserRequest{
		PersonID: personID,
		RoleID:   userRoleID,
		Username: "cajero1",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "una persona activa solo admite un usuario activo")
	assert.Nil(t, out)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	users.byUsername["cajero1"] = &entity.User{ID: userID, Username: "cajero1"}
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateUserRequest{
		PersonID: personID,
		RoleID:   userRoleID,
		Username: "cajero1",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Nil(t, out)
}

func TestUserCreateInactivePerson(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	persons.byID[personID].IsActive = false
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	out, err := uc.Create(context.Background(), admin(companyA), dto.CreateUserRequest{
		PersonID: personID,
		RoleID:   userRoleID,
		Username: "cajero1",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	users.byID[userID] = &entity.User{ID: userID, CompanyID: companyA, Username: "cajero1", IsActive: true}
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	_, err := uc.Update(context.Background(), admin(companyA), userID, dto.UpdateUserRequest{
		Password: strPtr("nuevaClave1"),
	})
	require.NoError(t, err)
	require.NotNil(t, users.updatedPatch)
	require.NotNil(t, users.updatedPatch.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(*users.updatedPatch.PasswordHash), []byte("nuevaClave1")))
}

func TestUserRemoveSelfBlocked(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	actor := admin(companyA)
	err := uc.Remove(context.Background(), actor, actor.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "nadie elimina su propia cuenta")
	assert.Empty(t, users.deletedIDs)
}

func TestUserRemoveOutsideScope(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	users.byID[userID] = &entity.User{ID: userID, CompanyID: companyB, IsActive: true}
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	err := uc.Remove(context.Background(), admin(companyA), userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, users.deletedIDs)
}

func TestUserListScoping(t *testing.T) {
	users, persons, companies, roles := newUserDeps()
	uc := usecase.NewUserUseCase(users, persons, companies, roles)

	_, err := uc.List(context.Background(), admin(companyA), dto.ListUsersQuery{CompanyID: companyB})
	require.NoError(t, err)
	assert.Equal(t, companyA, users.lastFilter.ScopeCompanyID,
		"el filtro companyId de un admin no puede escapar de su compañía")
}
