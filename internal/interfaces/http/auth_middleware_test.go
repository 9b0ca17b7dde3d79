package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/stampout-pos-api/internal/interfaces/http"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stampout-pos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "stampout-pos-test"
	testExpMin    = 60
)

// stubResolver simula la revalidación de perfil contra la base.
type stubResolver struct {
	profiles map[string]*entity.AuthUser
}

func (s *stubResolver) Validate(_ context.Context, userID string) (*entity.AuthUser, error) {
	return s.profiles[userID], nil
}

// buildTestApp app Fiber mínima con el middleware de auth y un handler que
// devuelve el actor resuelto.
func buildTestApp(resolver *stubResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, resolver),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"username": actor.Username,
				"company":  actor.CompanyID,
			})
		},
	)
	return app
}

func activeResolver() *stubResolver {
	return &stubResolver{profiles: map[string]*entity.AuthUser{
		testUserID: {
			ID:        testUserID,
			Username:  "jvaldez",
			CompanyID: testCompanyID,
			Role:      entity.RoleSummary{Name: entity.RoleAdmin},
		},
	}}
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Payload{
		UserID:    testUserID,
		Username:  "jvaldez",
		CompanyID: testCompanyID,
		RoleName:  entity.RoleAdmin,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := buildTestApp(activeResolver())
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := buildTestApp(activeResolver())
	resp := doRequest(t, app, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := buildTestApp(activeResolver())
	resp := doRequest(t, app, "Bearer no-es-un-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", pkgjwt.Payload{UserID: testUserID}, testIssuer, testExpMin)
	require.NoError(t, err)
	app := buildTestApp(activeResolver())
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareDeactivatedAccount(t *testing.T) {
	// Token válido pero el perfil ya no resuelve: la cuenta fue desactivada
	resolver := &stubResolver{profiles: map[string]*entity.AuthUser{}}
	app := buildTestApp(resolver)
	resp := doRequest(t, app, "Bearer "+validToken(t))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareHappyPath(t *testing.T) {
	app := buildTestApp(activeResolver())
	resp := doRequest(t, app, "Bearer "+validToken(t))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "jvaldez", got["username"])
	assert.Equal(t, testCompanyID, got["company"])
}
