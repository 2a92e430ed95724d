package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisRuleConfigRepository stores the zone rules as one JSON document.
type RedisRuleConfigRepository struct {
	rdb *redis.Client
	key string
}

var _ interfaces.IRuleConfigRepository = (*RedisRuleConfigRepository)(nil)

func NewRedisRuleConfigRepository(rdb *redis.Client, key string) *RedisRuleConfigRepository {
	return &RedisRuleConfigRepository{rdb: rdb, key: key}
}

func (r *RedisRuleConfigRepository) Load(ctx context.Context) (entities.RuleConfig, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.RuleConfig{}, false, nil
	}
	if err != nil {
		return entities.RuleConfig{}, false, err
	}
	cfg, err := decodeRuleConfig(raw)
	if err != nil {
		return entities.RuleConfig{}, false, err
	}
	return cfg, true, nil
}

func (r *RedisRuleConfigRepository) Save(ctx context.Context, cfg entities.RuleConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, raw, 0).Err()
}

// decodeRuleConfig overlays the stored document on the defaults, so fields
// missing from an older document keep their default value.
func decodeRuleConfig(raw []byte) (entities.RuleConfig, error) {
	cfg := entities.DefaultRuleConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return entities.RuleConfig{}, err
	}
	return cfg, nil
}

// MemoryRuleConfigRepository keeps the rules for the lifetime of the process.
type MemoryRuleConfigRepository struct {
	mu    sync.Mutex
	cfg   entities.RuleConfig
	saved bool
}

var _ interfaces.IRuleConfigRepository = (*MemoryRuleConfigRepository)(nil)

func NewMemoryRuleConfigRepository() *MemoryRuleConfigRepository {
	return &MemoryRuleConfigRepository{}
}

func (r *MemoryRuleConfigRepository) Load(_ context.Context) (entities.RuleConfig, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg, r.saved, nil
}

func (r *MemoryRuleConfigRepository) Save(_ context.Context, cfg entities.RuleConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
	r.saved = true
	return nil
}
