package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sclconsulting/inventario-api/internal/application/auth"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	apphttp "github.com/sclconsulting/inventario-api/internal/interfaces/http"
	pkgjwt "github.com/sclconsulting/inventario-api/pkg/jwt"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testUsername = "admin"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func testJWTOpts() pkgjwt.Options {
	return pkgjwt.Options{
		Secret:     "test-secret-key-for-unit-tests",
		Algorithm:  "HS256",
		Issuer:     "inventario-api-test",
		ExpMinutes: 60,
	}
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                   { r.users[u.ID] = u; return nil }

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve los locals si el middleware deja pasar.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	authUC := auth.NewAuthUseCase(repo, testJWTOpts())
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTOpts(), authUC, testLogger()),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func repoWithActiveUser() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Username: testUsername, IsActive: true},
	}}
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTOpts(), testUserID, testUsername)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp(repoWithActiveUser())
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(repoWithActiveUser())
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(repoWithActiveUser())
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		resp := doRequest(t, app, header)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	otherOpts := testJWTOpts()
	otherOpts.Secret = "otro-secreto"
	tok, err := pkgjwt.Generate(otherOpts, testUserID, testUsername)
	require.NoError(t, err)

	app := buildTestApp(repoWithActiveUser())
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token válido de una cuenta desactivada no da acceso: 403.
func TestAuthMiddleware_CuentaDesactivada(t *testing.T) {
	repo := repoWithActiveUser()
	repo.users[testUserID].IsActive = false

	app := buildTestApp(repo)
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Un token válido de un usuario que ya no existe tampoco da acceso.
func TestAuthMiddleware_UsuarioBorrado(t *testing.T) {
	app := buildTestApp(&fakeUserRepo{users: map[string]*entity.User{}})
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
