package usecase

import (
	"context"
	"strings"
	"time"

	"servicescale/internal/domain/entities"
	"servicescale/internal/domain/hvac"
	"servicescale/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidQuoteID         = &ValidationError{Field: "id", Reason: "must not be empty"}
	ErrInvalidQuoteStatus     = &ValidationError{Field: "status", Reason: "must be one of active, converted, lost"}
	ErrInvalidQuoteTotal      = &ValidationError{Field: "total", Reason: "must not be negative"}
	ErrMissingPropertyAddress = &ValidationError{Field: "address", Reason: "street, city and state are required to quote a property"}
)

// QuoteInput is a hand-written quote.
type QuoteInput struct {
	CustomerID string
	Service    string
	Total      decimal.Decimal
	TemplateID string
}

// BatchResult counts the outcome of a serial batch. Records skipped on purpose
// are in neither count.
type BatchResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// QuoteStats summarizes the owner's quotes for the dashboard.
type QuoteStats struct {
	Total          int                          `json:"total"`
	ByStatus       map[entities.QuoteStatus]int `json:"by_status"`
	TotalValue     decimal.Decimal              `json:"total_value"`
	ConvertedValue decimal.Decimal              `json:"converted_value"`
	ConversionRate float64                      `json:"conversion_rate"`
}

// IQuoteUseCase assembles, tracks and reports quotes.
//
// Assembly of one quote:
//   - property attributes come from the resolver chain
//   - zones come from the rule engine with the rules in effect now
//   - total = base + (zones-1) x additional zone, priced from the pricebook
//   - template content and property details are copied into the quote
type IQuoteUseCase interface {
	CreateFromCustomer(ctx context.Context, customerID, templateID string) (entities.Quote, error)
	CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	GenerateQuotes(ctx context.Context, customerIDs []string, templateID string) BatchResult
	List(ctx context.Context) ([]entities.Quote, error)
	Get(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.Quote, error)
	MarkSent(ctx context.Context, id string) (entities.Quote, error)
	TrackView(ctx context.Context, id string) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (QuoteStats, error)
}

type QuoteUseCase struct {
	store     interfaces.IRecordStore
	customers ICustomerUseCase
	pricebook IPricebookUseCase
	templates ITemplateUseCase
	rules     IRuleConfigStore
	resolver  PropertyResolver
	logger    *zap.Logger
	now       func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	store interfaces.IRecordStore,
	customers ICustomerUseCase,
	pricebook IPricebookUseCase,
	templates ITemplateUseCase,
	rules IRuleConfigStore,
	resolver PropertyResolver,
	logger *zap.Logger,
) *QuoteUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resolver == nil {
		resolver = DefaultPropertyResolver()
	}
	return &QuoteUseCase{
		store:     store,
		customers: customers,
		pricebook: pricebook,
		templates: templates,
		rules:     rules,
		resolver:  resolver,
		logger:    logger,
		now:       time.Now,
	}
}

// AssembleQuote builds an unsaved quote for the customer. It performs no I/O.
func AssembleQuote(c entities.Customer, pricing Pricing, cfg entities.RuleConfig, tpl *entities.Template, resolver PropertyResolver, now time.Time) (entities.Quote, error) {
	if !c.HasPropertyAddress() {
		return entities.Quote{}, ErrMissingPropertyAddress
	}
	attrs, _ := resolver.Resolve(c)
	zones := hvac.ComputeZones(hvac.InputFromAttributes(attrs), cfg)

	q := entities.Quote{
		OwnerID:         c.OwnerID,
		CustomerID:      c.ID,
		CustomerName:    c.Name,
		Status:          entities.QuoteStatusActive,
		Service:         ServiceLabel(zones),
		Total:           pricing.Total(zones),
		Zones:           zones,
		Content:         []entities.TemplateSection{},
		PropertyDetails: propertyDetails(c, attrs),
		CreatedAt:       now.UTC(),
	}
	if tpl != nil {
		q.TemplateID = tpl.ID
		q.Content = tpl.ContentSnapshot()
	}
	return q, nil
}

func (u *QuoteUseCase) resolveTemplate(ctx context.Context, templateID string) (*entities.Template, error) {
	tpl, ok, err := u.templates.Resolve(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &tpl, nil
}

func (u *QuoteUseCase) CreateFromCustomer(ctx context.Context, customerID, templateID string) (entities.Quote, error) {
	if _, err := requireOwner(ctx); err != nil {
		return entities.Quote{}, err
	}
	c, err := u.customers.Get(ctx, customerID)
	if err != nil {
		return entities.Quote{}, err
	}
	entries, err := u.pricebook.Entries(ctx, false)
	if err != nil {
		return entities.Quote{}, err
	}
	tpl, err := u.resolveTemplate(ctx, templateID)
	if err != nil {
		return entities.Quote{}, err
	}
	return u.assembleAndSave(ctx, c, PricingFromPricebook(entries), tpl)
}

func (u *QuoteUseCase) assembleAndSave(ctx context.Context, c entities.Customer, pricing Pricing, tpl *entities.Template) (entities.Quote, error) {
	q, err := AssembleQuote(c, pricing, u.rules.Get(ctx), tpl, u.resolver, u.now())
	if err != nil {
		return entities.Quote{}, err
	}
	return u.insert(ctx, q)
}

func (u *QuoteUseCase) insert(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = uuid.NewString()
	q.OwnerID = owner
	inserted, err := u.store.Insert(ctx, TableQuotes, []interfaces.Record{quoteToRecord(q)})
	if err != nil {
		return entities.Quote{}, remoteErr("quotes.insert", err)
	}
	u.logger.Info("[quote][usecase] quote created",
		zap.String("quote_id", q.ID), zap.String("customer_id", q.CustomerID), zap.String("total", q.Total.String()))
	if len(inserted) == 0 {
		return q, nil
	}
	return quoteFromRecord(inserted[0]), nil
}

// CreateQuote stores a quote whose service and total were entered by hand.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	if _, err := requireOwner(ctx); err != nil {
		return entities.Quote{}, err
	}
	service := strings.TrimSpace(in.Service)
	if service == "" {
		return entities.Quote{}, &ValidationError{Field: "service", Reason: "must not be empty"}
	}
	if in.Total.IsNegative() {
		return entities.Quote{}, ErrInvalidQuoteTotal
	}
	c, err := u.customers.Get(ctx, in.CustomerID)
	if err != nil {
		return entities.Quote{}, err
	}
	tpl, err := u.resolveTemplate(ctx, in.TemplateID)
	if err != nil {
		return entities.Quote{}, err
	}
	attrs, _ := u.resolver.Resolve(c)

	q := entities.Quote{
		CustomerID:      c.ID,
		CustomerName:    c.Name,
		Status:          entities.QuoteStatusActive,
		Service:         service,
		Total:           in.Total,
		Content:         []entities.TemplateSection{},
		PropertyDetails: propertyDetails(c, attrs),
		CreatedAt:       u.now().UTC(),
	}
	if tpl != nil {
		q.TemplateID = tpl.ID
		q.Content = tpl.ContentSnapshot()
	}
	return u.insert(ctx, q)
}

// GenerateQuotes creates one quote per customer, serially. A failing customer
// is counted and logged and the loop moves on. Soft-deleted customers are
// skipped. Pricebook, template and rules are read once for the whole batch.
func (u *QuoteUseCase) GenerateQuotes(ctx context.Context, customerIDs []string, templateID string) BatchResult {
	var res BatchResult
	if len(customerIDs) == 0 {
		return res
	}

	entries, err := u.pricebook.Entries(ctx, false)
	if err != nil {
		u.logger.Error("[quote][usecase] load pricebook failed", zap.Error(err))
		res.Failed = len(customerIDs)
		return res
	}
	pricing := PricingFromPricebook(entries)
	tpl, err := u.resolveTemplate(ctx, templateID)
	if err != nil {
		u.logger.Error("[quote][usecase] resolve template failed", zap.Error(err))
		res.Failed = len(customerIDs)
		return res
	}

	for _, id := range customerIDs {
		c, err := u.customers.Get(ctx, id)
		if err != nil {
			res.Failed++
			u.logger.Warn("[quote][usecase] customer lookup failed", zap.String("customer_id", id), zap.Error(err))
			continue
		}
		if c.Deleted {
			continue
		}
		if _, err := u.assembleAndSave(ctx, c, pricing, tpl); err != nil {
			res.Failed++
			u.logger.Warn("[quote][usecase] quote generation failed", zap.String("customer_id", id), zap.Error(err))
			continue
		}
		res.Succeeded++
	}

	u.logger.Info("[quote][usecase] batch generation finished",
		zap.Int("succeeded", res.Succeeded), zap.Int("failed", res.Failed))
	return res
}

// List returns the owner's quotes, newest first.
func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := u.store.Select(ctx, TableQuotes, interfaces.Match{columnOwnerID: owner},
		interfaces.Order{Column: columnCreatedAt, Desc: true})
	if err != nil {
		return nil, remoteErr("quotes.select", err)
	}
	out := make([]entities.Quote, 0, len(recs))
	for _, r := range recs {
		out = append(out, quoteFromRecord(r))
	}
	return out, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, id string) (entities.Quote, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	recs, err := u.store.Select(ctx, TableQuotes, interfaces.Match{columnID: id, columnOwnerID: owner})
	if err != nil {
		return entities.Quote{}, remoteErr("quotes.select", err)
	}
	if len(recs) == 0 {
		return entities.Quote{}, &NotFoundError{Kind: "quote", ID: id}
	}
	return quoteFromRecord(recs[0]), nil
}

func (u *QuoteUseCase) update(ctx context.Context, id string, partial interfaces.Record) (entities.Quote, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	rows, err := u.store.Update(ctx, TableQuotes, interfaces.Match{columnID: id, columnOwnerID: owner}, partial)
	if err != nil {
		return entities.Quote{}, remoteErr("quotes.update", err)
	}
	if len(rows) == 0 {
		return entities.Quote{}, &NotFoundError{Kind: "quote", ID: id}
	}
	return quoteFromRecord(rows[0]), nil
}

// UpdateStatus writes any known status. Transitions are not restricted.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.Quote, error) {
	st, ok := entities.ParseQuoteStatus(status)
	if !ok {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	q, err := u.update(ctx, id, interfaces.Record{"status": string(st)})
	if err != nil {
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] status updated", zap.String("quote_id", q.ID), zap.String("status", string(st)))
	return q, nil
}

func (u *QuoteUseCase) MarkSent(ctx context.Context, id string) (entities.Quote, error) {
	return u.update(ctx, id, interfaces.Record{"sent_at": interfaces.FormatTimestamp(u.now())})
}

// TrackView records a customer opening the quote link. The first open time is
// kept; the click time always moves to now.
func (u *QuoteUseCase) TrackView(ctx context.Context, id string) (entities.Quote, error) {
	current, err := u.Get(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	now := interfaces.FormatTimestamp(u.now())
	partial := interfaces.Record{"clicked_at": now}
	if current.OpenedAt == nil {
		partial["opened_at"] = now
	}
	return u.update(ctx, id, partial)
}

// Delete removes the quote permanently.
func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	owner, err := requireOwner(ctx)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	n, err := u.store.Delete(ctx, TableQuotes, interfaces.Match{columnID: id, columnOwnerID: owner})
	if err != nil {
		return remoteErr("quotes.delete", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "quote", ID: id}
	}
	return nil
}

// Stats counts quotes per status. The conversion rate is converted/total, 0
// with no quotes.
func (u *QuoteUseCase) Stats(ctx context.Context) (QuoteStats, error) {
	quotes, err := u.List(ctx)
	if err != nil {
		return QuoteStats{}, err
	}
	stats := QuoteStats{
		Total:          len(quotes),
		ByStatus:       make(map[entities.QuoteStatus]int, 3),
		TotalValue:     decimal.Zero,
		ConvertedValue: decimal.Zero,
	}
	for _, s := range entities.QuoteStatuses() {
		stats.ByStatus[s] = 0
	}
	for _, q := range quotes {
		stats.ByStatus[q.Status]++
		stats.TotalValue = stats.TotalValue.Add(q.Total)
		if q.Status == entities.QuoteStatusConverted {
			stats.ConvertedValue = stats.ConvertedValue.Add(q.Total)
		}
	}
	if stats.Total > 0 {
		stats.ConversionRate = float64(stats.ByStatus[entities.QuoteStatusConverted]) / float64(stats.Total)
	}
	return stats, nil
}
