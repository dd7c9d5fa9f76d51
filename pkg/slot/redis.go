package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Juliuuslm/tienda-ropa/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "tienda"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Publish(context.Context, string, any) *redis.IntCmd
}

// Redis persists slots in a shared Redis instance so that several
// processes can act on the same collections, and announces every write on
// a pub/sub channel so the others can re-read the slot.
type Redis struct {
	store   cmdable
	raw     *redis.Client
	channel string
	origin  string
}

// NewRedis bootstraps the slot store and verifies connectivity. origin
// identifies this process in change signals.
func NewRedis(ctx context.Context, cfg config.RedisConfig, channel, origin string) (*Redis, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{store: raw, raw: raw, channel: channel, origin: origin}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DB == 0 {
		opts.DB = cfg.DB
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	if r.store == nil {
		return nil, false, errors.New("redis slot store not initialized")
	}
	payload, err := r.store.Get(ctx, r.buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Write replaces the slot and publishes a change signal. The signal is
// best-effort: a failed publish does not undo the write.
func (r *Redis) Write(ctx context.Context, key string, payload []byte) error {
	if r.store == nil {
		return errors.New("redis slot store not initialized")
	}
	if err := r.store.Set(ctx, r.buildKey(key), payload, 0).Err(); err != nil {
		return err
	}
	signal, err := json.Marshal(ChangeSignal{Slot: key, Origin: r.origin})
	if err != nil {
		return err
	}
	return r.store.Publish(ctx, r.channel, signal).Err()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.store == nil {
		return errors.New("redis slot store not initialized")
	}
	return r.store.Ping(ctx).Err()
}

// Subscribe opens the change-signal subscription used by the sync
// listener.
func (r *Redis) Subscribe(ctx context.Context) *redis.PubSub {
	if r.raw == nil {
		return nil
	}
	return r.raw.Subscribe(ctx, r.channel)
}

func (r *Redis) Close() error {
	if r.raw == nil {
		return nil
	}
	return r.raw.Close()
}

func (r *Redis) buildKey(parts ...string) string {
	clean := []string{keyNamespace, "slot"}
	for _, part := range parts {
		if part == "" {
			continue
		}
		clean = append(clean, strings.TrimSpace(part))
	}
	return strings.Join(clean, ":")
}
