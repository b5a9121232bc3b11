package fonte

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/eduardoveiculos/simulacao-faturamento/internal/config"
	"github.com/eduardoveiculos/simulacao-faturamento/internal/notas"
)

// Resultado é a planilha carregada e de onde ela veio
type Resultado struct {
	Fonte   string
	Linhas  []notas.Linha
	DoCache bool
}

// Carregador tenta as fontes em ordem; a primeira que abre e tem linhas vence.
type Carregador struct {
	Fontes []Fonte
	Cache  Cache
	// Ler interpreta os bytes; nil usa notas.LerPlanilha
	Ler func(io.Reader) ([]notas.Linha, error)
}

func (c *Carregador) Carregar(ctx context.Context) (Resultado, error) {
	logger := config.GetLogger()
	ler := c.Ler
	if ler == nil {
		ler = notas.LerPlanilha
	}

	var erros []error
	for _, f := range c.Fontes {
		dados, doCache, err := c.baixar(ctx, f)
		if err != nil {
			erros = append(erros, fmt.Errorf("%s: %w", f.Nome(), err))
			continue
		}

		linhas, err := ler(bytes.NewReader(dados))
		if err != nil {
			erros = append(erros, fmt.Errorf("%s: %w", f.Nome(), err))
			continue
		}
		if len(linhas) == 0 {
			erros = append(erros, fmt.Errorf("%s: planilha vazia", f.Nome()))
			continue
		}

		if c.Cache != nil && !doCache {
			if err := c.Cache.Gravar(ctx, f.Nome(), dados); err != nil {
				config.LogError(logger, "fonte", "Carregar", "gravar cache", f.Nome(), err)
			}
		}
		logger.WithField("fonte", f.Nome()).WithField("linhas", len(linhas)).Info("planilha carregada")
		return Resultado{Fonte: f.Nome(), Linhas: linhas, DoCache: doCache}, nil
	}

	if len(erros) == 0 {
		return Resultado{}, ErrNenhumaFonte
	}
	return Resultado{}, fmt.Errorf("%w: %w", ErrNenhumaFonte, errors.Join(erros...))
}

func (c *Carregador) baixar(ctx context.Context, f Fonte) ([]byte, bool, error) {
	if c.Cache != nil {
		dados, ok, err := c.Cache.Ler(ctx, f.Nome())
		if err != nil {
			config.LogError(config.GetLogger(), "fonte", "baixar", "ler cache", f.Nome(), err)
		} else if ok {
			return dados, true, nil
		}
	}

	rc, err := f.Abrir(ctx)
	if err != nil {
		return nil, false, err
	}
	defer rc.Close()

	dados, err := io.ReadAll(rc)
	if err != nil {
		return nil, false, fmt.Errorf("ler conteúdo: %w", err)
	}
	return dados, false, nil
}

// Montar cria as fontes na ordem URL, arquivo local, GCS, conforme a configuração.
func Montar(cfg config.Config) []Fonte {
	var fontes []Fonte
	if cfg.FonteURL != "" {
		fontes = append(fontes, NewHTTP(cfg.FonteURL))
	}
	if cfg.FonteArquivo != "" {
		fontes = append(fontes, &Arquivo{Caminho: cfg.FonteArquivo})
	}
	if cfg.FonteGCSBucket != "" && cfg.FonteGCSObjeto != "" {
		fontes = append(fontes, &GCS{Bucket: cfg.FonteGCSBucket, Objeto: cfg.FonteGCSObjeto})
	}
	return fontes
}
