package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ProfileClaims identifica un perfil de navegador/dispositivo.
// El almacenamiento durable (sesión, sector) se particiona por ProfileID.
type ProfileClaims struct {
	jwt.RegisteredClaims
	ProfileID string `json:"profile_id"`
}

// GenerateProfile firma un token de perfil con HS256.
func GenerateProfile(secret, profileID, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if profileID == "" {
		return "", fmt.Errorf("jwt: profileID vacío")
	}
	now := time.Now()
	claims := ProfileClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ProfileID: profileID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseProfile valida el token y devuelve el profileID.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func ParseProfile(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &ProfileClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*ProfileClaims)
	if !ok || !token.Valid || claims.ProfileID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.ProfileID, nil
}
