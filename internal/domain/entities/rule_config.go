package entities

type SizeThresholds struct {
	Medium float64 `json:"medium"`
	Large  float64 `json:"large"`
}

// RuleConfig holds the tunable HVAC zone thresholds.
//
// Expected shape: BaseZones >= 1, Medium < Large, MaxZones >= BaseZones.
// These are not enforced; the zone engine copes with degenerate values.
type RuleConfig struct {
	BaseZones         int            `json:"base_zones"`
	SizeThresholds    SizeThresholds `json:"size_thresholds"`
	BathroomThreshold float64        `json:"bathroom_threshold"`
	MaxZones          int            `json:"max_zones"`
}

func DefaultRuleConfig() RuleConfig {
	return RuleConfig{
		BaseZones:         1,
		SizeThresholds:    SizeThresholds{Medium: 2500, Large: 4000},
		BathroomThreshold: 2.5,
		MaxZones:          4,
	}
}

// RuleConfigPatch is a partial override; nil fields keep their current value.
type RuleConfigPatch struct {
	BaseZones         *int     `json:"base_zones,omitempty"`
	MediumThreshold   *float64 `json:"medium_threshold,omitempty"`
	LargeThreshold    *float64 `json:"large_threshold,omitempty"`
	BathroomThreshold *float64 `json:"bathroom_threshold,omitempty"`
	MaxZones          *int     `json:"max_zones,omitempty"`
}

func (c RuleConfig) Apply(p RuleConfigPatch) RuleConfig {
	if p.BaseZones != nil {
		c.BaseZones = *p.BaseZones
	}
	if p.MediumThreshold != nil {
		c.SizeThresholds.Medium = *p.MediumThreshold
	}
	if p.LargeThreshold != nil {
		c.SizeThresholds.Large = *p.LargeThreshold
	}
	if p.BathroomThreshold != nil {
		c.BathroomThreshold = *p.BathroomThreshold
	}
	if p.MaxZones != nil {
		c.MaxZones = *p.MaxZones
	}
	return c
}
