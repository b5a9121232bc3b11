package fonte

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const prefixoCache = "fonte:"

// CacheRedis guarda as planilhas baixadas no Redis com TTL
type CacheRedis struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewCacheRedis(client redis.UniversalClient, ttl time.Duration) *CacheRedis {
	return &CacheRedis{client: client, ttl: ttl}
}

// ConectarRedis abre o cliente e confere a conexão
func ConectarRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

func (c *CacheRedis) Ler(ctx context.Context, chave string) ([]byte, bool, error) {
	dados, err := c.client.Get(ctx, prefixoCache+chave).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return dados, true, nil
}

func (c *CacheRedis) Gravar(ctx context.Context, chave string, dados []byte) error {
	return c.client.Set(ctx, prefixoCache+chave, dados, c.ttl).Err()
}
