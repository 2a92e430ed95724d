// Package hvac estimates how many independently conditioned zones a property needs.
package hvac

import (
	"math"

	"servicescale/internal/domain/entities"
)

// PropertyInput is the numeric view of a property the rules look at.
// Callers default unknown values to zero.
type PropertyInput struct {
	GrossSquareFootage    float64
	BasementSquareFootage float64
	LivingSquareFootage   float64
	HasBasement           bool
	FullBaths             float64
	HalfBaths             float64
}

// ComputeZones applies the zone rules in order and caps the result at cfg.MaxZones.
//
// It is pure and allocation free; customer filters call it once per row.
func ComputeZones(p PropertyInput, cfg entities.RuleConfig) int {
	zones := cfg.BaseZones

	total := p.GrossSquareFootage
	if p.HasBasement {
		total += p.BasementSquareFootage
	}

	// Thresholds are independent: crossing both adds two.
	if total > cfg.SizeThresholds.Medium {
		zones++
	}
	if total > cfg.SizeThresholds.Large {
		zones++
	}

	// Basement or non-living conditioned space (garage, extra storeys).
	if p.HasBasement || p.GrossSquareFootage > p.LivingSquareFootage {
		zones++
	}

	if p.FullBaths+0.5*p.HalfBaths > cfg.BathroomThreshold {
		zones++
	}

	if zones > cfg.MaxZones {
		return cfg.MaxZones
	}
	return zones
}

// InputFromAttributes builds engine input from stored customer attributes.
//
// Stored records only carry one size and a bathroom total, so gross and living
// area are equal, there is no basement, and a trailing .5 bathroom counts as one
// half bath.
func InputFromAttributes(a entities.PropertyAttributes) PropertyInput {
	size := float64(a.SquareFeet)
	if size < 0 {
		size = 0
	}
	baths := a.Bathrooms
	if baths < 0 {
		baths = 0
	}
	full := math.Floor(baths)
	half := 0.0
	if baths-full >= 0.5 {
		half = 1
	}
	return PropertyInput{
		GrossSquareFootage:  size,
		LivingSquareFootage: size,
		FullBaths:           full,
		HalfBaths:           half,
	}
}
