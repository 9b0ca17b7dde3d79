package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se embebe el perfil mínimo (username, email, empresa y rol) para que el
// middleware pueda tomar decisiones de scoping sin volver a consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
	RoleID    string `json:"role_id"`
	RoleName  string `json:"role_name"`
}

// Payload datos de aplicación que viajan dentro del token.
type Payload struct {
	UserID    string
	Username  string
	Email     string
	CompanyID string
	RoleID    string
	RoleName  string
}

// Generate genera un token JWT HS256 firmado con el payload de la aplicación.
func Generate(secret string, p Payload, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    p.UserID,
		Username:  p.Username,
		Email:     p.Email,
		CompanyID: p.CompanyID,
		RoleID:    p.RoleID,
		RoleName:  p.RoleName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el payload de aplicación.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Payload{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		CompanyID: claims.CompanyID,
		RoleID:    claims.RoleID,
		RoleName:  claims.RoleName,
	}, nil
}
