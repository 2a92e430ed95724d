package interfaces

import (
	"context"

	"servicescale/internal/domain/entities"
)

// IRuleConfigRepository persists the HVAC zone rules between process restarts.
// Load reports found=false when nothing has been saved yet.
type IRuleConfigRepository interface {
	Load(ctx context.Context) (cfg entities.RuleConfig, found bool, err error)
	Save(ctx context.Context, cfg entities.RuleConfig) error
}
