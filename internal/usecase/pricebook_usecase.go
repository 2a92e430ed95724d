package usecase

import (
	"context"
	"strings"

	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrNegativePrice = &ValidationError{Field: "price", Reason: "must not be negative"}

type PricebookEntryInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
}

type PricebookEntryPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
}

// IPricebookUseCase manages the owner's priced catalog.
type IPricebookUseCase interface {
	FetchAll(ctx context.Context) ([]entities.PricebookEntry, error)
	Entries(ctx context.Context, includeDeleted bool) ([]entities.PricebookEntry, error)
	Get(ctx context.Context, id string) (entities.PricebookEntry, error)
	CreateManual(ctx context.Context, in PricebookEntryInput) (entities.PricebookEntry, error)
	AddMany(ctx context.Context, entries []entities.PricebookEntry, batchID string) ([]entities.PricebookEntry, error)
	Update(ctx context.Context, id string, patch PricebookEntryPatch) (entities.PricebookEntry, error)
	SoftDelete(ctx context.Context, id string) (entities.PricebookEntry, error)
	Restore(ctx context.Context, id string) (entities.PricebookEntry, error)
	RemoveByBatch(ctx context.Context, batchID string) (int, error)
	Batches(ctx context.Context) ([]BatchSummary, error)
	SelectBatch(ctx context.Context, batchID string) error
	SelectedBatch(ctx context.Context) string
	PriceByName(ctx context.Context, name string) (decimal.Decimal, bool, error)
}

type PricebookUseCase struct {
	coll   *Collection[entities.PricebookEntry]
	logger *zap.Logger
}

var _ IPricebookUseCase = (*PricebookUseCase)(nil)

func NewPricebookUseCase(store interfaces.IRecordStore, logger *zap.Logger) *PricebookUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PricebookUseCase{coll: newCollection(store, pricebookCodec, logger), logger: logger}
}

func (u *PricebookUseCase) FetchAll(ctx context.Context) ([]entities.PricebookEntry, error) {
	return u.coll.FetchAll(ctx)
}

// Entries returns the in-memory catalog, newest first.
func (u *PricebookUseCase) Entries(ctx context.Context, includeDeleted bool) ([]entities.PricebookEntry, error) {
	items, err := u.coll.Items(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return items, nil
	}
	out := items[:0]
	for _, e := range items {
		if !e.Deleted {
			out = append(out, e)
		}
	}
	return out, nil
}

func (u *PricebookUseCase) Get(ctx context.Context, id string) (entities.PricebookEntry, error) {
	return u.coll.Get(ctx, id)
}

func (u *PricebookUseCase) CreateManual(ctx context.Context, in PricebookEntryInput) (entities.PricebookEntry, error) {
	e := entities.PricebookEntry{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
	}
	if e.Name == "" {
		return entities.PricebookEntry{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if e.Price.IsNegative() {
		return entities.PricebookEntry{}, ErrNegativePrice
	}

	added, err := u.coll.AddMany(ctx, []entities.PricebookEntry{e}, entities.ManualBatchID)
	if err != nil {
		return entities.PricebookEntry{}, err
	}
	return added[0], nil
}

func (u *PricebookUseCase) AddMany(ctx context.Context, entries []entities.PricebookEntry, batchID string) ([]entities.PricebookEntry, error) {
	for _, e := range entries {
		if e.Price.IsNegative() {
			return nil, ErrNegativePrice
		}
	}
	return u.coll.AddMany(ctx, entries, batchID)
}

func (u *PricebookUseCase) Update(ctx context.Context, id string, patch PricebookEntryPatch) (entities.PricebookEntry, error) {
	partial := interfaces.Record{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.PricebookEntry{}, &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		partial["name"] = name
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return entities.PricebookEntry{}, ErrNegativePrice
		}
		partial["price"] = patch.Price.String()
	}
	if patch.Description != nil {
		partial["description"] = strings.TrimSpace(*patch.Description)
	}
	if len(partial) == 0 {
		return u.coll.Get(ctx, id)
	}
	return u.coll.Update(ctx, id, partial)
}

func (u *PricebookUseCase) SoftDelete(ctx context.Context, id string) (entities.PricebookEntry, error) {
	return u.coll.SoftDelete(ctx, id)
}

func (u *PricebookUseCase) Restore(ctx context.Context, id string) (entities.PricebookEntry, error) {
	return u.coll.Restore(ctx, id)
}

func (u *PricebookUseCase) RemoveByBatch(ctx context.Context, batchID string) (int, error) {
	return u.coll.RemoveByBatch(ctx, batchID)
}

func (u *PricebookUseCase) Batches(ctx context.Context) ([]BatchSummary, error) {
	return u.coll.Batches(ctx)
}

func (u *PricebookUseCase) SelectBatch(ctx context.Context, batchID string) error {
	return u.coll.SelectBatch(ctx, batchID)
}

func (u *PricebookUseCase) SelectedBatch(ctx context.Context) string {
	return u.coll.SelectedBatch(ctx)
}

// PriceByName looks up the price of the newest active entry with that name.
func (u *PricebookUseCase) PriceByName(ctx context.Context, name string) (decimal.Decimal, bool, error) {
	entries, err := u.Entries(ctx, false)
	if err != nil {
		return decimal.Zero, false, err
	}
	price, ok := lookupPrice(entries, name)
	return price, ok, nil
}
