package usecase

import (
	"context"
	"errors"

	"servicescale/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrEnrichmentNotConfigured = errors.New("property data service not configured")

type IEnrichmentUseCase interface {
	EnrichCustomers(ctx context.Context, customerIDs []string) BatchResult
}

// EnrichmentUseCase fills customer property attributes from the property data service.
type EnrichmentUseCase struct {
	customers ICustomerUseCase
	enricher  interfaces.IPropertyEnricher
	logger    *zap.Logger
}

var _ IEnrichmentUseCase = (*EnrichmentUseCase)(nil)

func NewEnrichmentUseCase(customers ICustomerUseCase, enricher interfaces.IPropertyEnricher, logger *zap.Logger) *EnrichmentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichmentUseCase{customers: customers, enricher: enricher, logger: logger}
}

// EnrichCustomers looks up each customer in turn and stores the attributes
// found. Soft-deleted customers are skipped and counted nowhere. One failure
// never stops the batch.
func (u *EnrichmentUseCase) EnrichCustomers(ctx context.Context, customerIDs []string) BatchResult {
	var res BatchResult
	for _, id := range customerIDs {
		if err := u.enrichOne(ctx, id); err != nil {
			if errors.Is(err, errSkipped) {
				continue
			}
			res.Failed++
			u.logger.Warn("[enrichment][usecase] customer enrichment failed",
				zap.String("customer_id", id), zap.Error(err))
			continue
		}
		res.Succeeded++
	}
	u.logger.Info("[enrichment][usecase] batch enrichment finished",
		zap.Int("succeeded", res.Succeeded), zap.Int("failed", res.Failed))
	return res
}

var errSkipped = errors.New("skipped")

func (u *EnrichmentUseCase) enrichOne(ctx context.Context, id string) error {
	c, err := u.customers.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.Deleted {
		return errSkipped
	}
	if u.enricher == nil {
		return ErrEnrichmentNotConfigured
	}
	attrs, err := u.enricher.Lookup(ctx, c.Address, c.City, c.State)
	if err != nil {
		return remoteErr("property.lookup", err)
	}
	_, err = u.customers.ApplyEnrichment(ctx, c.ID, attrs)
	return err
}
