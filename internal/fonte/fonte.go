package fonte

import (
	"context"
	"errors"
	"io"
)

// ErrNenhumaFonte indica que nenhuma fonte configurada entregou uma planilha válida.
// O chamador deve oferecer o upload manual.
var ErrNenhumaFonte = errors.New("nenhuma fonte de dados disponível")

// Fonte é um lugar de onde a planilha de notas pode ser lida
type Fonte interface {
	Nome() string
	Abrir(ctx context.Context) (io.ReadCloser, error)
}

// Cache guarda os bytes crus de cada fonte por um tempo
type Cache interface {
	Ler(ctx context.Context, chave string) ([]byte, bool, error)
	Gravar(ctx context.Context, chave string, dados []byte) error
}
