package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/ibeauty-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// buildRoleApp ruta /admin protegida por JWT + RBAC.
func buildRoleApp(codec *pkgjwt.Codec, roles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/admin",
		apphttp.AuthMiddleware(codec, nil, logger.Nop()),
		apphttp.RequireRole(roles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

func callAdmin(t *testing.T, app *fiber.App, codec *pkgjwt.Codec, role string) (*http.Response, string) {
	t.Helper()
	tok, err := codec.Issue(pkgjwt.Claims{UserID: 1, OrganizationID: 2, Role: role}, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRequireRole_AdminAccede(t *testing.T) {
	codec := newTestCodec(t)
	resp, body := callAdmin(t, buildRoleApp(codec, "admin"), codec, "admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"role":"admin"`)
}

func TestRequireRole_UsuarioBloqueado(t *testing.T) {
	codec := newTestCodec(t)
	resp, body := callAdmin(t, buildRoleApp(codec, "admin"), codec, "user")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_401(t *testing.T) {
	codec := newTestCodec(t)
	resp, body := callAdmin(t, buildRoleApp(codec, "admin"), codec, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "TOKEN_INVALID")
}
