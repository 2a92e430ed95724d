package repository

import (
	"context"
	"testing"

	"servicescale/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRuleConfig(t *testing.T) {
	cfg, err := decodeRuleConfig([]byte(`{"max_zones": 6, "size_thresholds": {"medium": 2000, "large": 3500}}`))
	require.NoError(t, err)
	want := entities.DefaultRuleConfig()
	want.MaxZones = 6
	want.SizeThresholds = entities.SizeThresholds{Medium: 2000, Large: 3500}
	assert.Equal(t, want, cfg)

	_, err = decodeRuleConfig([]byte("not json"))
	assert.Error(t, err)
}

func TestMemoryRuleConfigRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRuleConfigRepository()

	_, found, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	cfg := entities.DefaultRuleConfig()
	cfg.BaseZones = 2
	require.NoError(t, r.Save(ctx, cfg))

	got, found, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cfg, got)
}
