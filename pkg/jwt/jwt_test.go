package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/sclconsulting/inventario-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testUser   = "admin"
)

func testOpts() pkgjwt.Options {
	return pkgjwt.Options{
		Secret:     testSecret,
		Algorithm:  "HS256",
		Issuer:     "inventario-api-test",
		ExpMinutes: 60,
	}
}

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testOpts(), testUserID, testUser)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, err := pkgjwt.Parse(testOpts(), tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUser, username)
}

func TestGenerate_SecretVacio(t *testing.T) {
	opts := testOpts()
	opts.Secret = ""
	_, err := pkgjwt.Generate(opts, testUserID, testUser)
	assert.Error(t, err)
}

func TestGenerate_AlgoritmoNoSoportado(t *testing.T) {
	opts := testOpts()
	opts.Algorithm = "RS256"
	_, err := pkgjwt.Generate(opts, testUserID, testUser)
	assert.Error(t, err, "solo se admite la familia HMAC")
}

func TestGenerate_AlgoritmosHMAC(t *testing.T) {
	for _, alg := range []string{"", "HS256", "HS384", "HS512"} {
		opts := testOpts()
		opts.Algorithm = alg
		tok, err := pkgjwt.Generate(opts, testUserID, testUser)
		require.NoError(t, err, "alg %q debe ser válido", alg)

		userID, _, err := pkgjwt.Parse(opts, tok)
		require.NoError(t, err, "alg %q debe verificar", alg)
		assert.Equal(t, testUserID, userID)
	}
}

func TestParse_TokenExpirado(t *testing.T) {
	opts := testOpts()
	opts.ExpMinutes = -1 // emitido ya vencido
	tok, err := pkgjwt.Generate(opts, testUserID, testUser)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testOpts(), tok)
	assert.Error(t, err, "un token vencido nunca valida")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testOpts(), testUserID, testUser)
	require.NoError(t, err)

	opts := testOpts()
	opts.Secret = "otro-secreto"
	_, _, err = pkgjwt.Parse(opts, tok)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := pkgjwt.Parse(testOpts(), "no-es-un-jwt")
	assert.Error(t, err)
}
