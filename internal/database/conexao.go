package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appconfig "github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config descreve a conexão com o Postgres
type Config struct {
	Host         string
	Porta        uint
	Nome         string
	SecretID     string
	SSLDesligado bool
}

// ConfigDoAmbiente lê DB_HOST, DB_PORT (padrão 5432), DB_NAME, DB_SECRET_ID e DB_SSL_MODE_DISABLE
func ConfigDoAmbiente() Config {
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	return Config{
		Host:         os.Getenv("DB_HOST"),
		Porta:        uint(porta),
		Nome:         os.Getenv("DB_NAME"),
		SecretID:     os.Getenv("DB_SECRET_ID"),
		SSLDesligado: os.Getenv("DB_SSL_MODE_DISABLE") == "true",
	}
}

func montarDSN(cfg Config, usuario, senha string) string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d", cfg.Host, usuario, senha, cfg.Nome, cfg.Porta)
	if cfg.SSLDesligado {
		dsn += " sslmode=disable"
	}
	return dsn
}

// Conectar abre o banco; as credenciais vêm de DB_USERNAME/DB_PASSWORD ou do Secrets Manager
func Conectar(ctx context.Context, cfg Config) (*gorm.DB, error) {
	usuario, senha, err := Credenciais(ctx, cfg.SecretID)
	if err != nil {
		return nil, fmt.Errorf("credenciais do banco: %w", err)
	}

	gormLogger := logger.New(appconfig.GetLogger(), logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Error,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(postgres.Open(montarDSN(cfg, usuario, senha)), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("abrir conexão: %w", err)
	}
	return db, nil
}
