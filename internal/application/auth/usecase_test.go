package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stampout-pos-api/internal/application/auth"
	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/domain"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/stampout-pos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "stampout-pos-test"
)

// fakeUserRepo implementación en memoria de repository.UserRepository para los
// tests del flujo de credenciales. Solo los métodos de perfil hacen algo útil.
type fakeUserRepo struct {
	repository.UserRepository
	profiles       map[string]*entity.AuthUser // por username
	byID           map[string]*entity.AuthUser
	lastLoginCalls []string
}

func (f *fakeUserRepo) GetProfileByUsername(_ context.Context, username string) (*entity.AuthUser, error) {
	return f.profiles[username], nil
}

func (f *fakeUserRepo) GetProfileByID(_ context.Context, id string) (*entity.AuthUser, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id string) error {
	f.lastLoginCalls = append(f.lastLoginCalls, id)
	return nil
}

// fakeSessionRepo captura las sesiones creadas y desactivadas.
type fakeSessionRepo struct {
	created     []*entity.UserSession
	deactivated [][2]string // (userID, tokenHash)
}

func (f *fakeSessionRepo) Create(_ context.Context, s *entity.UserSession) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSessionRepo) Deactivate(_ context.Context, userID, tokenHash string) error {
	f.deactivated = append(f.deactivated, [2]string{userID, tokenHash})
	return nil
}

func testProfile(t *testing.T, password string) *entity.AuthUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.AuthUser{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "jvaldez",
		PersonID:     "00000000-0000-0000-0000-000000000002",
		CompanyID:    "00000000-0000-0000-0000-000000000003",
		RoleID:       "00000000-0000-0000-0000-000000000004",
		PasswordHash: string(hash),
		Person: entity.PersonSummary{
			ID: "00000000-0000-0000-0000-000000000002", FirstName: "Juan", LastName: "Valdez",
			IdentificationNumber: "1020304050",
		},
		Company: entity.CompanySummary{ID: "00000000-0000-0000-0000-000000000003", Name: "Tiendas Andinas"},
		Role:    entity.RoleSummary{ID: "00000000-0000-0000-0000-000000000004", Name: entity.RoleAdmin},
	}
}

func newTestUseCase(users *fakeUserRepo, sessions *fakeSessionRepo) *auth.UseCase {
	return auth.NewUseCase(users, sessions, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

func TestLoginSuccess(t *testing.T) {
	profile := testProfile(t, "secreto123")
	users := &fakeUserRepo{profiles: map[string]*entity.AuthUser{"jvaldez": profile}}
	sessions := &fakeSessionRepo{}
	uc := newTestUseCase(users, sessions)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jvaldez", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	// El token debe ser válido y llevar el perfil mínimo
	payload, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe parsear con el mismo secreto")
	assert.Equal(t, profile.ID, payload.UserID)
	assert.Equal(t, profile.CompanyID, payload.CompanyID)
	assert.Equal(t, entity.RoleAdmin, payload.RoleName)

	// Perfil público sin hash de contraseña
	assert.Equal(t, "jvaldez", out.User.Username)
	assert.Equal(t, "Tiendas Andinas", out.User.Company.Name)

	// Registro de login y sesión persistida
	assert.Equal(t, []string{profile.ID}, users.lastLoginCalls)
	require.Len(t, sessions.created, 1)
	s := sessions.created[0]
	assert.Equal(t, profile.ID, s.UserID)
	assert.True(t, s.IsActive)
	assert.Len(t, s.TokenHash, 64, "el hash de sesión es SHA-256 en hex")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), s.ExpiresAt, time.Minute)
}

func TestLoginUnknownUser(t *testing.T) {
	users := &fakeUserRepo{profiles: map[string]*entity.AuthUser{}}
	uc := newTestUseCase(users, &fakeSessionRepo{})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLoginWrongPassword(t *testing.T) {
	profile := testProfile(t, "secreto123")
	users := &fakeUserRepo{profiles: map[string]*entity.AuthUser{"jvaldez": profile}}
	sessions := &fakeSessionRepo{}
	uc := newTestUseCase(users, sessions)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jvaldez", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
	assert.Empty(t, users.lastLoginCalls, "un login fallido no registra last_login")
	assert.Empty(t, sessions.created, "un login fallido no crea sesión")
}

func TestValidateMissingUser(t *testing.T) {
	users := &fakeUserRepo{byID: map[string]*entity.AuthUser{}}
	uc := newTestUseCase(users, &fakeSessionRepo{})

	got, err := uc.Validate(context.Background(), "desconocido")
	require.NoError(t, err)
	assert.Nil(t, got, "un usuario inexistente o inactivo valida a nil")
}

func TestLogoutDeactivatesMatchingSession(t *testing.T) {
	profile := testProfile(t, "secreto123")
	users := &fakeUserRepo{profiles: map[string]*entity.AuthUser{"jvaldez": profile}}
	sessions := &fakeSessionRepo{}
	uc := newTestUseCase(users, sessions)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jvaldez", Password: "secreto123"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), profile.ID, out.Token))
	require.Len(t, sessions.deactivated, 1)
	assert.Equal(t, profile.ID, sessions.deactivated[0][0])
	assert.Equal(t, sessions.created[0].TokenHash, sessions.deactivated[0][1],
		"el logout debe producir el mismo digest que el login persistió")
}
