package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/jhoicas/Dotacion-api/internal/interfaces/http"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Dotacion-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-de-pruebas"
	testIssuer    = "dotacion-api-test"
)

// buildTestApp monta una ruta protegida con el middleware real y un handler
// de relleno que devuelve el rol resuelto desde el contexto.
func buildTestApp(roles ...string) *fiber.App {
	app := fiber.New()
	grp := app.Group("/protegido", httpiface.AuthMiddleware(testJWTSecret))
	if len(roles) > 0 {
		grp.Use(httpiface.RequireRole(roles...))
	}
	grp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"role":    httpiface.GetRole(c),
		})
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testJWTSecret, "user-1", role, testIssuer, 5)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest("GET", "/protegido/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()

	casos := []string{
		"no-es-bearer",
		"Basic dXNlcjpwYXNz",
		"Bearer ",
		"Bearer no.es.un.jwt",
	}
	for _, header := range casos {
		req := httptest.NewRequest("GET", "/protegido/", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header: %q", header)
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp()

	token, err := pkgjwt.Generate("otro-secreto", "user-1", entity.RoleAdmin, testIssuer, 5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()

	token, err := pkgjwt.Generate(testJWTSecret, "user-1", entity.RoleAdmin, testIssuer, -5)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest("GET", "/protegido/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleDocente))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAlmacenista)

	for _, role := range []string{entity.RoleAdmin, entity.RoleAlmacenista} {
		req := httptest.NewRequest("GET", "/protegido/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenForRole(t, role))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "rol: %s", role)
	}
}

// El docente lee pero no muta depósito: 403, no 401 (el token es válido).
func TestRequireRole_RolSinPermiso(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleAlmacenista)

	req := httptest.NewRequest("GET", "/protegido/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, entity.RoleDocente))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
