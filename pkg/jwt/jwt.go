package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Options parámetros de emisión y verificación de tokens.
// Algorithm debe ser de la familia HMAC (HS256, HS384, HS512).
type Options struct {
	Secret     string
	Algorithm  string
	Issuer     string
	ExpMinutes int
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el username (claim "sub", como en el login tradicional);
// UserID lleva el ID para no tener que resolver el username en cada request.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// Generate genera un token JWT firmado con sub=username, user_id, iat y exp en UTC.
func Generate(opts Options, userID, username string) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	method := signingMethod(opts.Algorithm)
	if method == nil {
		return "", fmt.Errorf("jwt: algoritmo no soportado: %q", opts.Algorithm)
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    opts.Issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(opts.ExpMinutes) * time.Minute)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(opts.Secret))
}

// Parse valida el token y devuelve userID y username.
// Retorna un único error opaco si el token es inválido, expirado o tiene
// firma incorrecta; el caller nunca distingue el motivo.
func Parse(opts Options, tokenString string) (userID, username string, err error) {
	if opts.Secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(opts.Secret), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("jwt: token inválido")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", "", fmt.Errorf("jwt: token inválido")
	}
	return claims.UserID, claims.Subject, nil
}

// signingMethod resuelve el método HMAC configurado; nil si no es HS256/HS384/HS512.
func signingMethod(alg string) jwt.SigningMethod {
	switch alg {
	case "", "HS256":
		return jwt.SigningMethodHS256
	case "HS384":
		return jwt.SigningMethodHS384
	case "HS512":
		return jwt.SigningMethodHS512
	}
	return nil
}
