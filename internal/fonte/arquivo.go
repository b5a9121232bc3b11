package fonte

import (
	"context"
	"io"
	"os"
)

// Arquivo lê a planilha do disco local
type Arquivo struct {
	Caminho string
}

func (a *Arquivo) Nome() string { return "arquivo:" + a.Caminho }

func (a *Arquivo) Abrir(_ context.Context) (io.ReadCloser, error) {
	return os.Open(a.Caminho)
}
