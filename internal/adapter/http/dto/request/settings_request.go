package request

import "servicescale/internal/domain/entities"

// UpdateZoneRulesRequest overrides any subset of the zone rules.
type UpdateZoneRulesRequest struct {
	BaseZones         *int     `json:"base_zones"`
	MediumThreshold   *float64 `json:"medium_threshold"`
	LargeThreshold    *float64 `json:"large_threshold"`
	BathroomThreshold *float64 `json:"bathroom_threshold"`
	MaxZones          *int     `json:"max_zones"`
}

func (r UpdateZoneRulesRequest) ToPatch() entities.RuleConfigPatch {
	return entities.RuleConfigPatch{
		BaseZones:         r.BaseZones,
		MediumThreshold:   r.MediumThreshold,
		LargeThreshold:    r.LargeThreshold,
		BathroomThreshold: r.BathroomThreshold,
		MaxZones:          r.MaxZones,
	}
}
