package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

// GetLogger devolve o logger compartilhado da aplicação
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)
	logg.SetLevel(nivelLog(os.Getenv("LOG_LEVEL")))
}

func nivelLog(valor string) logrus.Level {
	if valor == "" {
		return logrus.InfoLevel
	}
	nivel, err := logrus.ParseLevel(valor)
	if err != nil {
		return logrus.InfoLevel
	}
	return nivel
}

// LogError registra uma falha com o módulo e a função de origem
func LogError(logger *logrus.Logger, modulo string, funcao string, contexto string, dados any, err error) {
	campos := logrus.Fields{
		"modulo":   modulo,
		"funcao":   funcao,
		"contexto": contexto,
	}
	if dados != nil {
		campos["dados"] = dados
	}
	logger.WithFields(campos).Error(err.Error())
}
