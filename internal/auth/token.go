package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims do access token
type Claims struct {
	UsuarioID uint `json:"usuarioId"`
	IsAdmin   bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 15 * time.Minute

// GerarAccessToken assina um JWT RS256 com kid, iss, aud, iat, nbf e jti
func GerarAccessToken(usuarioID uint, isAdmin bool) (string, error) {
	c, err := chavesAtivas()
	if err != nil {
		return "", fmt.Errorf("carregar chaves: %w", err)
	}

	agora := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Audience:  []string{c.audience},
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(agora.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(agora),
			NotBefore: jwt.NewNumericDate(agora.Add(-1 * time.Minute)),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(metodoAssinatura(), claims)
	tok.Header["kid"] = c.kid
	return tok.SignedString(c.privada)
}

// ValidarToken confere assinatura, kid, iss, aud e exp
func ValidarToken(tokenStr string) (*Claims, error) {
	c, err := chavesAtivas()
	if err != nil {
		return nil, fmt.Errorf("carregar chaves: %w", err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
	)
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("kid ausente")
		}
		pub, ok := c.publica(kid)
		if !ok {
			return nil, errors.New("kid desconhecido")
		}
		return pub, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}
