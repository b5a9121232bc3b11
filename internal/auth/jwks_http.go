package auth

import (
	"encoding/base64"
	"math/big"
	"net/http"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/utils"
)

type jwk struct {
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSHandler publica a chave pública ativa em /.well-known/jwks.json
func JWKSHandler(w http.ResponseWriter, r *http.Request) {
	c, err := chavesAtivas()
	if err != nil {
		config.LogError(config.GetLogger(), "auth", "JWKSHandler", "carregar chaves", nil, err)
		http.Error(w, "JWKS indisponível", http.StatusInternalServerError)
		return
	}
	pub, ok := c.publica(c.kid)
	if !ok {
		http.Error(w, "Chave pública ausente", http.StatusInternalServerError)
		return
	}

	resp := struct {
		Keys []jwk `json:"keys"`
	}{
		Keys: []jwk{{
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			Kid: c.kid,
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	}
	utils.ResponderJSON(w, http.StatusOK, resp)
}
