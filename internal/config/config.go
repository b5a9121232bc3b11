package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config reúne as variáveis de ambiente usadas na inicialização da API
type Config struct {
	Porta            string
	AnoSimulacao     int
	MargemReferencia int

	FonteURL       string
	FonteArquivo   string
	FonteGCSBucket string
	FonteGCSObjeto string

	RedisAddr string
	CacheTTL  time.Duration

	CORSOrigins []string
}

// Carregar lê o .env (se existir) e monta a Config com valores padrão
func Carregar() Config {
	if err := godotenv.Load(); err != nil {
		logg.Debug(".env não encontrado, usando variáveis do ambiente")
	}
	// o .env pode trazer LOG_LEVEL
	logg.SetLevel(nivelLog(os.Getenv("LOG_LEVEL")))

	return Config{
		Porta:            valorOuPadrao("PORT", "8080"),
		AnoSimulacao:     inteiroOuPadrao("ANO_SIMULACAO", time.Now().Year()),
		MargemReferencia: inteiroOuPadrao("MARGEM_REFERENCIA", 20),
		FonteURL:         os.Getenv("FONTE_URL"),
		FonteArquivo:     os.Getenv("FONTE_ARQUIVO"),
		FonteGCSBucket:   os.Getenv("FONTE_GCS_BUCKET"),
		FonteGCSObjeto:   os.Getenv("FONTE_GCS_OBJETO"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		CacheTTL:         duracaoOuPadrao("CACHE_TTL", 300*time.Second),
		CORSOrigins:      listaOuPadrao("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func valorOuPadrao(chave, padrao string) string {
	if v := strings.TrimSpace(os.Getenv(chave)); v != "" {
		return v
	}
	return padrao
}

func inteiroOuPadrao(chave string, padrao int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(chave)))
	if err != nil {
		return padrao
	}
	return v
}

// aceita "300s", "5m" ou apenas segundos
func duracaoOuPadrao(chave string, padrao time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(chave))
	if v == "" {
		return padrao
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.Atoi(v); err == nil {
		return time.Duration(s) * time.Second
	}
	return padrao
}

func listaOuPadrao(chave string, padrao []string) []string {
	v := strings.TrimSpace(os.Getenv(chave))
	if v == "" {
		return padrao
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return padrao
	}
	return out
}
