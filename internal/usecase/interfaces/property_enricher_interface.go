package interfaces

import (
	"context"

	"servicescale/internal/domain/entities"
)

// IPropertyEnricher looks up public property data for a street address.
//
// Lookup fails when any input is blank, when the service is not configured,
// or when the upstream service reports an error or no matching property.
type IPropertyEnricher interface {
	Lookup(ctx context.Context, streetAddress, city, state string) (entities.PropertyAttributes, error)
}
