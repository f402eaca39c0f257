package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/CondoClubServices/area-scheduler/internal/httperr"
)

// IssueToken assina um JWT HS256 com o email do sujeito e o conjunto de
// permissões. Payload consumido pelos clientes: sub, permissions, exp.
func IssueToken(secret, subjectEmail string, permissions []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":         subjectEmail,
		"permissions": permissions,
		"exp":         now.Add(ttl).Unix(),
		"iat":         now.Unix(),
		"jti":         uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type tokenPayload struct {
	SubjectEmail string
	Permissions  []string
}

// parseToken verifica assinatura e expiração. Qualquer falha (token
// malformado, expirado, algoritmo errado) vira invalid_credentials —
// indistinguível de sujeito inexistente, para não vazar existência de conta.
func parseToken(secret, raw string) (*tokenPayload, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	var permissions []string
	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, p := range raw {
			if s, ok := p.(string); ok {
				permissions = append(permissions, s)
			}
		}
	}

	return &tokenPayload{
		SubjectEmail: sub,
		Permissions:  permissions,
	}, nil
}
