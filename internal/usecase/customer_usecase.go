package usecase

import (
	"context"
	"strings"

	"servicescale/internal/domain/entities"
	"servicescale/internal/domain/hvac"
	"servicescale/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CustomerInput is a hand-entered customer.
type CustomerInput struct {
	Name       string
	Email      string
	Address    string
	City       string
	State      string
	PostalCode string
}

// CustomerPatch is a partial customer edit; nil fields are left alone.
// The combined address cannot be set directly.
type CustomerPatch struct {
	Name         *string
	Email        *string
	Address      *string
	City         *string
	State        *string
	PostalCode   *string
	PropertyType *string
	SquareFeet   *int
	YearBuilt    *int
	Bedrooms     *int
	Bathrooms    *float64
}

func (p CustomerPatch) touchesAddress() bool {
	return p.Address != nil || p.City != nil || p.State != nil || p.PostalCode != nil
}

func (p CustomerPatch) record() interfaces.Record {
	r := interfaces.Record{}
	setStr := func(col string, v *string) {
		if v != nil {
			r[col] = strings.TrimSpace(*v)
		}
	}
	setStr("name", p.Name)
	setStr("email", p.Email)
	setStr("address", p.Address)
	setStr("city", p.City)
	setStr("state", p.State)
	setStr("postal_code", p.PostalCode)
	setStr("property_type", p.PropertyType)
	if p.SquareFeet != nil {
		r["property_size"] = *p.SquareFeet
	}
	if p.YearBuilt != nil {
		r["year_built"] = *p.YearBuilt
	}
	if p.Bedrooms != nil {
		r["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		r["bathrooms"] = *p.Bathrooms
	}
	return r
}

// CustomerFilter narrows a customer listing. Zero values do not filter.
type CustomerFilter struct {
	Search         string
	BatchID        string
	PropertyType   string
	City           string
	State          string
	YearBuilt      int
	Zones          int
	IncludeDeleted bool
}

// CustomerView is a customer with its zone count under the current rules.
type CustomerView struct {
	entities.Customer
	Zones int `json:"zones"`
}

// ICustomerUseCase manages the owner's customer collection.
type ICustomerUseCase interface {
	FetchAll(ctx context.Context) ([]entities.Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]CustomerView, error)
	Get(ctx context.Context, id string) (entities.Customer, error)
	CreateManual(ctx context.Context, in CustomerInput) (entities.Customer, error)
	AddMany(ctx context.Context, customers []entities.Customer, batchID string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error)
	ApplyEnrichment(ctx context.Context, id string, attrs entities.PropertyAttributes) (entities.Customer, error)
	SoftDelete(ctx context.Context, id string) (entities.Customer, error)
	Restore(ctx context.Context, id string) (entities.Customer, error)
	RemoveByBatch(ctx context.Context, batchID string) (int, error)
	Batches(ctx context.Context) ([]BatchSummary, error)
	SelectBatch(ctx context.Context, batchID string) error
	SelectedBatch(ctx context.Context) string
}

type CustomerUseCase struct {
	coll     *Collection[entities.Customer]
	rules    IRuleConfigStore
	resolver PropertyResolver
	logger   *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(store interfaces.IRecordStore, rules IRuleConfigStore, resolver PropertyResolver, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = DefaultPropertyResolver()
	}
	return &CustomerUseCase{
		coll:     newCollection(store, customerCodec, logger),
		rules:    rules,
		resolver: resolver,
		logger:   logger,
	}
}

func (u *CustomerUseCase) FetchAll(ctx context.Context) ([]entities.Customer, error) {
	return u.coll.FetchAll(ctx)
}

func (u *CustomerUseCase) Get(ctx context.Context, id string) (entities.Customer, error) {
	return u.coll.Get(ctx, id)
}

// zones computes the zone count of c under cfg. Customers with no resolvable
// attributes get the base zone count.
func (u *CustomerUseCase) zones(c entities.Customer, cfg entities.RuleConfig) int {
	attrs, _ := u.resolver.Resolve(c)
	return hvac.ComputeZones(hvac.InputFromAttributes(attrs), cfg)
}

// List filters the in-memory customers. Zone counts are recomputed with the
// rules in effect now, never read from storage.
func (u *CustomerUseCase) List(ctx context.Context, f CustomerFilter) ([]CustomerView, error) {
	items, err := u.coll.Items(ctx)
	if err != nil {
		return nil, err
	}
	cfg := u.rules.Get(ctx)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]CustomerView, 0, len(items))
	for _, c := range items {
		if c.Deleted && !f.IncludeDeleted {
			continue
		}
		if f.BatchID != "" && c.BatchID != f.BatchID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.FullAddress), search) {
			continue
		}
		if f.PropertyType != "" && !strings.EqualFold(c.Property.PropertyType, f.PropertyType) {
			continue
		}
		if f.City != "" && !strings.EqualFold(strings.TrimSpace(c.City), strings.TrimSpace(f.City)) {
			continue
		}
		if f.State != "" && !strings.EqualFold(strings.TrimSpace(c.State), strings.TrimSpace(f.State)) {
			continue
		}
		if f.YearBuilt != 0 && c.Property.YearBuilt != f.YearBuilt {
			continue
		}
		zones := u.zones(c, cfg)
		if f.Zones != 0 && zones != f.Zones {
			continue
		}
		out = append(out, CustomerView{Customer: c, Zones: zones})
	}
	return out, nil
}

func (u *CustomerUseCase) CreateManual(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	c := entities.Customer{
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		PostalCode: strings.TrimSpace(in.PostalCode),
	}
	if c.Name == "" {
		return entities.Customer{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	c.RefreshFullAddress()

	added, err := u.coll.AddMany(ctx, []entities.Customer{c}, entities.ManualBatchID)
	if err != nil {
		return entities.Customer{}, err
	}
	return added[0], nil
}

// AddMany persists already projected customers under one batch.
func (u *CustomerUseCase) AddMany(ctx context.Context, customers []entities.Customer, batchID string) ([]entities.Customer, error) {
	for i := range customers {
		customers[i].RefreshFullAddress()
	}
	return u.coll.AddMany(ctx, customers, batchID)
}

// Update applies a partial edit. When an address component changes, the
// combined address is rebuilt from the merged record.
func (u *CustomerUseCase) Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error) {
	partial := patch.record()
	if name, ok := partial["name"]; ok && name == "" {
		return entities.Customer{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if patch.touchesAddress() {
		current, err := u.coll.Get(ctx, id)
		if err != nil {
			return entities.Customer{}, err
		}
		merged := current
		if patch.Address != nil {
			merged.Address = partial.String("address")
		}
		if patch.City != nil {
			merged.City = partial.String("city")
		}
		if patch.State != nil {
			merged.State = partial.String("state")
		}
		if patch.PostalCode != nil {
			merged.PostalCode = partial.String("postal_code")
		}
		merged.RefreshFullAddress()
		partial["full_address"] = merged.FullAddress
	}

	if len(partial) == 0 {
		return u.coll.Get(ctx, id)
	}
	return u.coll.Update(ctx, id, partial)
}

// ApplyEnrichment stores looked-up property attributes on the customer.
func (u *CustomerUseCase) ApplyEnrichment(ctx context.Context, id string, attrs entities.PropertyAttributes) (entities.Customer, error) {
	return u.coll.Update(ctx, id, propertyRecord(attrs))
}

func (u *CustomerUseCase) SoftDelete(ctx context.Context, id string) (entities.Customer, error) {
	return u.coll.SoftDelete(ctx, id)
}

func (u *CustomerUseCase) Restore(ctx context.Context, id string) (entities.Customer, error) {
	return u.coll.Restore(ctx, id)
}

func (u *CustomerUseCase) RemoveByBatch(ctx context.Context, batchID string) (int, error) {
	return u.coll.RemoveByBatch(ctx, batchID)
}

func (u *CustomerUseCase) Batches(ctx context.Context) ([]BatchSummary, error) {
	return u.coll.Batches(ctx)
}

func (u *CustomerUseCase) SelectBatch(ctx context.Context, batchID string) error {
	return u.coll.SelectBatch(ctx, batchID)
}

func (u *CustomerUseCase) SelectedBatch(ctx context.Context) string {
	return u.coll.SelectedBatch(ctx)
}
