package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"servicescale/internal/auth"
	"servicescale/internal/domain/entities"
	"servicescale/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Columns every collection table carries.
const (
	columnID        = "id"
	columnOwnerID   = "owner_id"
	columnBatchID   = "upload_id"
	columnDeleted   = "deleted"
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
)

// BatchSummary describes one import batch present in a collection.
type BatchSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type entityCodec[T any] struct {
	table      string
	kind       string
	toRecord   func(T) interfaces.Record
	fromRecord func(interfaces.Record) T
	id         func(T) string
	batchID    func(T) string
}

type collectionState[T any] struct {
	items         []T
	loaded        bool
	loading       bool
	lastErr       string
	selectedBatch string
}

// Collection is an owner-scoped, soft-deletable set of records mirrored in memory.
//
// Lifecycle:
//   - SoftDelete/Restore flip the deleted flag of one record and keep every other field.
//   - RemoveByBatch hard-deletes a whole import batch straight in the store.
//
// Calls are not queued. Overlapping calls race at the store and the last
// response to arrive wins in memory; no version check is made.
type Collection[T any] struct {
	store  interfaces.IRecordStore
	codec  entityCodec[T]
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	states map[string]*collectionState[T]
}

func newCollection[T any](store interfaces.IRecordStore, codec entityCodec[T], logger *zap.Logger) *Collection[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[T]{
		store:  store,
		codec:  codec,
		logger: logger,
		now:    time.Now,
		states: make(map[string]*collectionState[T]),
	}
}

func requireOwner(ctx context.Context) (string, error) {
	owner := auth.OwnerID(ctx)
	if owner == "" {
		return "", ErrMissingOwner
	}
	return owner, nil
}

// state must be called with c.mu held.
func (c *Collection[T]) state(owner string) *collectionState[T] {
	st, ok := c.states[owner]
	if !ok {
		st = &collectionState[T]{}
		c.states[owner] = st
	}
	return st
}

func (c *Collection[T]) begin(owner string) {
	c.mu.Lock()
	c.state(owner).loading = true
	c.mu.Unlock()
}

func (c *Collection[T]) end(owner string, err error) {
	c.mu.Lock()
	st := c.state(owner)
	st.loading = false
	if err != nil {
		st.lastErr = err.Error()
	} else {
		st.lastErr = ""
	}
	c.mu.Unlock()
}

func (c *Collection[T]) decode(recs []interfaces.Record) []T {
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		out = append(out, c.codec.fromRecord(r))
	}
	return out
}

// FetchAll reloads every record of the current owner, newest first. Soft-deleted
// records are included.
func (c *Collection[T]) FetchAll(ctx context.Context) ([]T, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}

	c.begin(owner)
	recs, err := c.store.Select(ctx, c.codec.table,
		interfaces.Match{columnOwnerID: owner},
		interfaces.Order{Column: columnCreatedAt, Desc: true},
	)
	if err != nil {
		err = remoteErr(c.codec.table+".select", err)
		c.end(owner, err)
		return nil, err
	}
	items := c.decode(recs)

	c.mu.Lock()
	st := c.state(owner)
	st.items = items
	st.loaded = true
	c.mu.Unlock()
	c.end(owner, nil)

	c.logger.Debug("[collection][usecase] fetched",
		zap.String("table", c.codec.table), zap.String("owner_id", owner), zap.Int("count", len(items)))
	return append([]T(nil), items...), nil
}

// Items returns the in-memory records, fetching them first if this owner has
// never been loaded.
func (c *Collection[T]) Items(ctx context.Context) ([]T, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	st := c.state(owner)
	if st.loaded {
		items := append([]T(nil), st.items...)
		c.mu.Unlock()
		return items, nil
	}
	c.mu.Unlock()
	return c.FetchAll(ctx)
}

// Get returns one record, from memory when present, else from the store.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	owner, err := requireOwner(ctx)
	if err != nil {
		return zero, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	c.mu.Lock()
	for _, it := range c.state(owner).items {
		if c.codec.id(it) == id {
			c.mu.Unlock()
			return it, nil
		}
	}
	c.mu.Unlock()

	recs, err := c.store.Select(ctx, c.codec.table, interfaces.Match{columnID: id, columnOwnerID: owner})
	if err != nil {
		return zero, remoteErr(c.codec.table+".select", err)
	}
	if len(recs) == 0 {
		return zero, &NotFoundError{Kind: c.codec.kind, ID: id}
	}
	return c.codec.fromRecord(recs[0]), nil
}

// AddMany stamps owner, batch tag, ids and timestamps onto records, persists
// them and prepends the stored results. On failure nothing is added locally;
// callers re-fetch to reconcile a partially successful backend.
func (c *Collection[T]) AddMany(ctx context.Context, records []T, batchID string) ([]T, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return nil, err
	}
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return nil, &ValidationError{Field: "batch_id", Reason: "must not be empty"}
	}
	if len(records) == 0 {
		return nil, nil
	}

	now := interfaces.FormatTimestamp(c.now())
	recs := make([]interfaces.Record, 0, len(records))
	for _, item := range records {
		r := c.codec.toRecord(item)
		if r.String(columnID) == "" {
			r[columnID] = uuid.NewString()
		}
		r[columnOwnerID] = owner
		r[columnBatchID] = batchID
		r[columnDeleted] = false
		r[columnCreatedAt] = now
		r[columnUpdatedAt] = now
		recs = append(recs, r)
	}

	c.begin(owner)
	inserted, err := c.store.Insert(ctx, c.codec.table, recs)
	if err != nil {
		err = remoteErr(c.codec.table+".insert", err)
		c.end(owner, err)
		c.logger.Error("[collection][usecase] insert failed",
			zap.String("table", c.codec.table), zap.String("batch_id", batchID), zap.Error(err))
		return nil, err
	}
	added := c.decode(inserted)

	c.mu.Lock()
	st := c.state(owner)
	st.items = append(append([]T(nil), added...), st.items...)
	c.mu.Unlock()
	c.end(owner, nil)

	c.logger.Info("[collection][usecase] records added",
		zap.String("table", c.codec.table), zap.String("batch_id", batchID), zap.Int("count", len(added)))
	return added, nil
}

// Update persists a partial update of one record and merges the stored result
// into memory. Identity, owner, batch and creation time cannot be changed.
func (c *Collection[T]) Update(ctx context.Context, id string, partial interfaces.Record) (T, error) {
	return c.update(ctx, id, partial, true)
}

// update writes partial as is when stamp is false, leaving updated_at alone.
func (c *Collection[T]) update(ctx context.Context, id string, partial interfaces.Record, stamp bool) (T, error) {
	var zero T
	owner, err := requireOwner(ctx)
	if err != nil {
		return zero, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	patch := partial.Clone()
	for _, k := range []string{columnID, columnOwnerID, columnBatchID, columnCreatedAt} {
		delete(patch, k)
	}
	if stamp {
		patch[columnUpdatedAt] = interfaces.FormatTimestamp(c.now())
	}

	c.begin(owner)
	rows, err := c.store.Update(ctx, c.codec.table, interfaces.Match{columnID: id, columnOwnerID: owner}, patch)
	if err != nil {
		err = remoteErr(c.codec.table+".update", err)
		c.end(owner, err)
		return zero, err
	}
	if len(rows) == 0 {
		err = &NotFoundError{Kind: c.codec.kind, ID: id}
		c.end(owner, err)
		return zero, err
	}
	updated := c.codec.fromRecord(rows[0])

	c.mu.Lock()
	st := c.state(owner)
	for i, it := range st.items {
		if c.codec.id(it) == id {
			st.items[i] = updated
			break
		}
	}
	c.mu.Unlock()
	c.end(owner, nil)
	return updated, nil
}

func (c *Collection[T]) SoftDelete(ctx context.Context, id string) (T, error) {
	return c.update(ctx, id, interfaces.Record{columnDeleted: true}, false)
}

func (c *Collection[T]) Restore(ctx context.Context, id string) (T, error) {
	return c.update(ctx, id, interfaces.Record{columnDeleted: false}, false)
}

// RemoveByBatch irreversibly deletes every record of the batch and clears the
// selected batch filter when it pointed at it.
func (c *Collection[T]) RemoveByBatch(ctx context.Context, batchID string) (int, error) {
	owner, err := requireOwner(ctx)
	if err != nil {
		return 0, err
	}
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return 0, &ValidationError{Field: "batch_id", Reason: "must not be empty"}
	}

	c.begin(owner)
	n, err := c.store.Delete(ctx, c.codec.table, interfaces.Match{columnOwnerID: owner, columnBatchID: batchID})
	if err != nil {
		err = remoteErr(c.codec.table+".delete", err)
		c.end(owner, err)
		return 0, err
	}

	c.mu.Lock()
	st := c.state(owner)
	kept := st.items[:0:0]
	for _, it := range st.items {
		if c.codec.batchID(it) != batchID {
			kept = append(kept, it)
		}
	}
	st.items = kept
	if st.selectedBatch == batchID {
		st.selectedBatch = ""
	}
	c.mu.Unlock()
	c.end(owner, nil)

	c.logger.Info("[collection][usecase] batch removed",
		zap.String("table", c.codec.table), zap.String("batch_id", batchID), zap.Int("deleted", n))
	return n, nil
}

// Batches lists the batches present in memory, newest first, with record counts.
func (c *Collection[T]) Batches(ctx context.Context) ([]BatchSummary, error) {
	items, err := c.Items(ctx)
	if err != nil {
		return nil, err
	}
	index := map[string]int{}
	var out []BatchSummary
	for _, it := range items {
		id := c.codec.batchID(it)
		if i, ok := index[id]; ok {
			out[i].Count++
			continue
		}
		index[id] = len(out)
		out = append(out, BatchSummary{ID: id, Name: entities.BatchDisplayName(id), Count: 1})
	}
	return out, nil
}

func (c *Collection[T]) SelectBatch(ctx context.Context, batchID string) error {
	owner, err := requireOwner(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.state(owner).selectedBatch = strings.TrimSpace(batchID)
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) SelectedBatch(ctx context.Context) string {
	owner := auth.OwnerID(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(owner).selectedBatch
}

// Loading reports whether a remote call for the current owner is in flight.
func (c *Collection[T]) Loading(ctx context.Context) bool {
	owner := auth.OwnerID(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(owner).loading
}

// LastError is the message of the most recent failed call, "" after a success.
func (c *Collection[T]) LastError(ctx context.Context) string {
	owner := auth.OwnerID(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(owner).lastErr
}
