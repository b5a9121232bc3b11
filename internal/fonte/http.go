package fonte

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTP baixa a planilha de uma URL (ex.: link público de um drive)
type HTTP struct {
	URL    string
	Client *http.Client
}

func NewHTTP(url string) *HTTP {
	return &HTTP{URL: url, Client: &http.Client{Timeout: 60 * time.Second}}
}

func (h *HTTP) Nome() string { return "url:" + h.URL }

func (h *HTTP) Abrir(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição: %w", err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baixar %s: %w", h.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("baixar %s: status %d", h.URL, resp.StatusCode)
	}
	return resp.Body, nil
}
