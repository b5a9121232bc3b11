package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

type conjuntoChaves struct {
	privada  *rsa.PrivateKey
	publicas map[string]*rsa.PublicKey // kid -> pública
	kid      string
	issuer   string
	audience string
}

var (
	mu     sync.RWMutex
	chaves *conjuntoChaves

	ambienteOnce sync.Once
	ambienteErr  error
)

// ConfigurarChaves define a chave de assinatura ativa. Sem chamada explícita, as chaves
// vêm de AUTH_RSA_PRIVATE_PATH, AUTH_KID, AUTH_ISSUER e AUTH_AUDIENCE.
func ConfigurarChaves(privada *rsa.PrivateKey, kid, issuer, audience string) {
	mu.Lock()
	defer mu.Unlock()
	chaves = &conjuntoChaves{
		privada:  privada,
		publicas: map[string]*rsa.PublicKey{kid: &privada.PublicKey},
		kid:      kid,
		issuer:   issuer,
		audience: audience,
	}
}

func chavesAtivas() (*conjuntoChaves, error) {
	mu.RLock()
	c := chaves
	mu.RUnlock()
	if c != nil {
		return c, nil
	}

	ambienteOnce.Do(func() {
		ambienteErr = carregarDoAmbiente()
	})

	mu.RLock()
	defer mu.RUnlock()
	if chaves == nil {
		return nil, ambienteErr
	}
	return chaves, nil
}

func carregarDoAmbiente() error {
	path := os.Getenv("AUTH_RSA_PRIVATE_PATH")
	kid := os.Getenv("AUTH_KID")
	issuer := os.Getenv("AUTH_ISSUER")
	audience := os.Getenv("AUTH_AUDIENCE")

	if path == "" || kid == "" || issuer == "" || audience == "" {
		return errors.New("variáveis ausentes: AUTH_RSA_PRIVATE_PATH/AUTH_KID/AUTH_ISSUER/AUTH_AUDIENCE")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ler chave privada: %w", err)
	}
	privada, err := LerChavePrivada(b)
	if err != nil {
		return err
	}
	ConfigurarChaves(privada, kid, issuer, audience)
	return nil
}

// LerChavePrivada aceita PEM em PKCS#1 ou PKCS#8
func LerChavePrivada(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("PEM da chave privada inválido")
	}

	if k, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return k, nil
	}
	k8, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("interpretar chave privada: %w", err)
	}
	privada, ok := k8.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("chave privada não é RSA")
	}
	return privada, nil
}

func (c *conjuntoChaves) publica(kid string) (*rsa.PublicKey, bool) {
	p, ok := c.publicas[kid]
	return p, ok
}

func metodoAssinatura() jwt.SigningMethod { return jwt.SigningMethodRS256 }
