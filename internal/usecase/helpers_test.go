package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"servicescale/internal/adapter/persistence/repository"
	"servicescale/internal/auth"
)

const testOwner = "owner-1"

func ownerCtx() context.Context {
	return authCtx(testOwner)
}

func authCtx(owner string) context.Context {
	return auth.WithOwnerID(context.Background(), owner)
}

// seqBatchIDs hands out b-1, b-2, ...
type seqBatchIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqBatchIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("b-%d", g.n)
}

// stepClock advances one second per call so creation order is deterministic.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

type testStack struct {
	store     *repository.MemoryRecordStore
	rules     *RuleConfigStore
	customers *CustomerUseCase
	pricebook *PricebookUseCase
	templates *TemplateUseCase
	uploads   *UploadUseCase
	quotes    *QuoteUseCase
}

func newTestStack() *testStack {
	clock := newStepClock()
	store := repository.NewMemoryRecordStore()
	rules := NewRuleConfigStore(nil, nil)
	customers := NewCustomerUseCase(store, rules, nil, nil)
	customers.coll.now = clock.Now
	pricebook := NewPricebookUseCase(store, nil)
	pricebook.coll.now = clock.Now
	templates := NewTemplateUseCase(store, nil)
	templates.now = clock.Now
	uploads := NewUploadUseCase(store, customers, pricebook, nil, nil)
	uploads.coll.now = clock.Now
	quotes := NewQuoteUseCase(store, customers, pricebook, templates, rules, nil, nil)
	quotes.now = clock.Now
	return &testStack{
		store:     store,
		rules:     rules,
		customers: customers,
		pricebook: pricebook,
		templates: templates,
		uploads:   uploads,
		quotes:    quotes,
	}
}
