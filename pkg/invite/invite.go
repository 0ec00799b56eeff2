package invite

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la identidad del miembro invitado.
// El token viaja en el path del link de onboarding (/register/invite/:token);
// no otorga sesión, solo resuelve el registro pendiente.
type Claims struct {
	jwt.RegisteredClaims
	MemberID   string `json:"member_id"`
	BusinessID string `json:"business_id"`
}

// Generate genera un token de invitación firmado (HS256) para un miembro pendiente.
func Generate(secret, memberID, businessID, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("invite: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   memberID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		MemberID:   memberID,
		BusinessID: businessID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token de invitación y devuelve memberID y businessID.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (memberID, businessID string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("invite: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.MemberID, claims.BusinessID, nil
}
