package usecase

import (
	"context"
	"sync"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IRuleConfigStore holds the HVAC zone rules shared by every owner.
type IRuleConfigStore interface {
	Get(ctx context.Context) entities.RuleConfig
	Update(ctx context.Context, patch entities.RuleConfigPatch) (entities.RuleConfig, error)
}

type RuleConfigStore struct {
	repo   interfaces.IRuleConfigRepository
	logger *zap.Logger

	mu      sync.RWMutex
	current entities.RuleConfig
	loaded  bool
}

var _ IRuleConfigStore = (*RuleConfigStore)(nil)

// NewRuleConfigStore starts from the defaults. repo may be nil to keep the
// rules in memory only.
func NewRuleConfigStore(repo interfaces.IRuleConfigRepository, logger *zap.Logger) *RuleConfigStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleConfigStore{repo: repo, logger: logger, current: entities.DefaultRuleConfig()}
}

// Get returns the current rules. The persisted value is read on first use; if it
// cannot be read the defaults are served and the read is retried next time.
func (s *RuleConfigStore) Get(ctx context.Context) entities.RuleConfig {
	s.mu.RLock()
	if s.loaded || s.repo == nil {
		cfg := s.current
		s.mu.RUnlock()
		return cfg
	}
	s.mu.RUnlock()

	cfg, found, err := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.current
	}
	if err != nil {
		s.logger.Warn("[settings][usecase] load zone rules failed, using defaults", zap.Error(err))
		return s.current
	}
	if found {
		s.current = cfg
	}
	s.loaded = true
	return s.current
}

// Update merges the patch into the current rules and persists the result. On a
// failed save the previous rules stay in effect.
func (s *RuleConfigStore) Update(ctx context.Context, patch entities.RuleConfigPatch) (entities.RuleConfig, error) {
	next := s.Get(ctx).Apply(patch)

	if s.repo != nil {
		if err := s.repo.Save(ctx, next); err != nil {
			s.logger.Error("[settings][usecase] save zone rules failed", zap.Error(err))
			return entities.RuleConfig{}, remoteErr("rule_config.save", err)
		}
	}

	s.mu.Lock()
	s.current = next
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("[settings][usecase] zone rules updated",
		zap.Int("base_zones", next.BaseZones),
		zap.Float64("medium_threshold", next.SizeThresholds.Medium),
		zap.Float64("large_threshold", next.SizeThresholds.Large),
		zap.Float64("bathroom_threshold", next.BathroomThreshold),
		zap.Int("max_zones", next.MaxZones),
	)
	return next, nil
}
