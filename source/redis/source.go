package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/AirHelp/samplestats/helper"
)

type Config struct {
	Hosts    []string `yaml:"hosts"`
	ListKeys []string `yaml:"list_keys"`
}

type Source struct {
	client   *redis.Ring
	listKeys []string
}

func New(config *Config) (*Source, error) {
	if len(config.Hosts) == 0 {
		return &Source{}, fmt.Errorf("hosts list cannot be empty")
	}

	if len(config.ListKeys) == 0 {
		return &Source{}, fmt.Errorf("list keys cannot be empty")
	}

	ringOpts := make(map[string]string)

	for i, addr := range config.Hosts {
		key := fmt.Sprintf("host%d", i+1)
		ringOpts[key] = addr
	}

	c := redis.NewRing(&redis.RingOptions{
		Addrs: ringOpts,
	})

	err := c.ForEachShard(context.Background(), func(ctx context.Context, shard *redis.Client) error {
		res := shard.Ping(ctx)
		err := res.Err()

		if err != nil {
			zap.S().Errorf("failed to connect to Redis instance: %v", shard.Options().Addr)
			return err
		}

		zap.S().Debugf("successfully connected to Redis instance: %v, result: %v", shard.Options().Addr, res.Val())
		return nil
	})

	if err != nil {
		return &Source{}, err
	}

	return &Source{
		client:   c,
		listKeys: config.ListKeys,
	}, nil
}

func (s *Source) Kind() string {
	return "redis"
}

// Load reads every configured list in full from every shard of the ring.
func (s *Source) Load(ctx context.Context) ([]uint64, error) {
	var (
		mu     sync.Mutex
		values []uint64
	)

	for _, key := range s.listKeys {
		err := s.client.ForEachShard(ctx, func(ctx context.Context, shard *redis.Client) error {
			items, err := shard.LRange(ctx, key, 0, -1).Result()
			if err != nil {
				return err
			}

			parsed := make([]uint64, 0, len(items))
			for _, item := range items {
				n, err := helper.ParseUint(item)
				if err != nil {
					return fmt.Errorf("list %v: %w", key, err)
				}

				parsed = append(parsed, n)
			}

			mu.Lock()
			values = append(values, parsed...)
			mu.Unlock()

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return values, nil
}
