package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sclconsulting/inventario-api/internal/application/auth"
	"github.com/sclconsulting/inventario-api/internal/application/dto"
	"github.com/sclconsulting/inventario-api/internal/domain"
	"github.com/sclconsulting/inventario-api/internal/domain/entity"
	pkgjwt "github.com/sclconsulting/inventario-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func testJWTOpts() pkgjwt.Options {
	return pkgjwt.Options{
		Secret:     "test-secret-key-for-unit-tests",
		Algorithm:  "HS256",
		Issuer:     "inventario-api-test",
		ExpMinutes: 60,
	}
}

func registerUser(t *testing.T, uc *auth.AuthUseCase, username, password string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{Username: username, Password: password})
	require.NoError(t, err)
	return out
}

func TestRegister_NuevoUsuarioActivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTOpts())

	out := registerUser(t, uc, "admin", "s3cret-pass")
	assert.Equal(t, "admin", out.Username)
	assert.True(t, out.IsActive, "los usuarios nuevos nacen activos")

	stored, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())
	registerUser(t, uc, "admin", "s3cret-pass")

	_, err := uc.Register(dto.RegisterRequest{Username: "admin", Password: "otro-pass-123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())
	email := "admin@example.com"
	_, err := uc.Register(dto.RegisterRequest{Username: "admin", Email: &email, Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "otro", Email: &email, Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_TokenValido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())
	created := registerUser(t, uc, "admin", "s3cret-pass")

	out, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	userID, username, err := pkgjwt.Parse(testJWTOpts(), out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "admin", username)
}

// Usuario inexistente y password incorrecto devuelven el mismo error:
// la respuesta no revela cuál de los dos falló.
func TestLogin_CredencialesInvalidasIndistinguibles(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())
	registerUser(t, uc, "admin", "s3cret-pass")

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecto"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "s3cret-pass"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errBadPass, errNoUser)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTOpts())
	created := registerUser(t, uc, "admin", "s3cret-pass")

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	stored.IsActive = false
	require.NoError(t, repo.Update(stored))

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

// Desactivar una cuenta corta el login; reactivarla lo restablece.
func TestSetActive_ToggleDeCuenta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())
	created := registerUser(t, uc, "admin", "s3cret-pass")

	out, err := uc.SetActive(created.ID, false)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.IsActive)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	out, err = uc.SetActive(created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.IsActive)

	_, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "s3cret-pass"})
	assert.NoError(t, err)
}

func TestSetActive_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTOpts())

	out, err := uc.SetActive("no-existe", false)
	require.NoError(t, err)
	assert.Nil(t, out)
}
