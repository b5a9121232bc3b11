package fonte

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCS lê a planilha de um objeto no Cloud Storage
type GCS struct {
	Bucket string
	Objeto string
}

func (g *GCS) Nome() string { return fmt.Sprintf("gcs:%s/%s", g.Bucket, g.Objeto) }

func (g *GCS) Abrir(ctx context.Context) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("criar cliente storage: %w", err)
	}

	r, err := client.Bucket(g.Bucket).Object(g.Objeto).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("abrir objeto %s: %w", g.Nome(), err)
	}
	return &leitorGCS{Reader: r, client: client}, nil
}

// fecha o reader e o cliente juntos
type leitorGCS struct {
	*storage.Reader
	client *storage.Client
}

func (l *leitorGCS) Close() error {
	err := l.Reader.Close()
	if errCli := l.client.Close(); err == nil {
		err = errCli
	}
	return err
}
