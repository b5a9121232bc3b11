package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfigDoAmbiente(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "simulacao")
	t.Setenv("DB_SECRET_ID", "prod/db")
	t.Setenv("DB_SSL_MODE_DISABLE", "true")

	cfg := ConfigDoAmbiente()
	assert.Equal(t, Config{Host: "db.local", Porta: 5432, Nome: "simulacao", SecretID: "prod/db", SSLDesligado: true}, cfg)

	t.Setenv("DB_PORT", "6543")
	assert.Equal(t, uint(6543), ConfigDoAmbiente().Porta)
}

func TestMontarDSN(t *testing.T) {
	cfg := Config{Host: "h", Porta: 5432, Nome: "n"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432", montarDSN(cfg, "u", "p"))

	cfg.SSLDesligado = true
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", montarDSN(cfg, "u", "p"))
}

func TestCredenciaisDoAmbiente(t *testing.T) {
	t.Setenv("DB_USERNAME", "app")
	t.Setenv("DB_PASSWORD", "segredo")

	u, s, err := Credenciais(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "app", u)
	assert.Equal(t, "segredo", s)
}

func TestCredenciaisSemNada(t *testing.T) {
	t.Setenv("DB_USERNAME", "")
	t.Setenv("DB_PASSWORD", "")

	_, _, err := Credenciais(context.Background(), "")
	assert.Error(t, err)
}

type secretFake struct {
	valor *string
	err   error
}

func (s secretFake) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{Name: in.SecretId, SecretString: s.valor}, nil
}

func TestCredenciaisDoSecret(t *testing.T) {
	u, s, err := credenciaisDoSecret(context.Background(), secretFake{valor: aws.String(`{"username":"adm","password":"xyz"}`)}, "prod/db")
	require.NoError(t, err)
	assert.Equal(t, "adm", u)
	assert.Equal(t, "xyz", s)

	_, _, err = credenciaisDoSecret(context.Background(), secretFake{err: errors.New("negado")}, "prod/db")
	assert.ErrorContains(t, err, "negado")

	_, _, err = credenciaisDoSecret(context.Background(), secretFake{}, "prod/db")
	assert.Error(t, err)

	_, _, err = credenciaisDoSecret(context.Background(), secretFake{valor: aws.String("{")}, "prod/db")
	assert.Error(t, err)
}

func TestMigrarParaNoPrimeiroErro(t *testing.T) {
	var chamadas []int
	ok := func(n int) Migrador {
		return func(*gorm.DB) error { chamadas = append(chamadas, n); return nil }
	}
	falha := func(*gorm.DB) error { return errors.New("boom") }

	err := Migrar(nil, ok(1), falha, ok(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migração 2")
	assert.Equal(t, []int{1}, chamadas)
}
