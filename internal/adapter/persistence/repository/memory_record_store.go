package repository

import (
	"context"
	"fmt"
	"sync"

	"servicescale/internal/usecase/interfaces"
)

// MemoryRecordStore keeps every table in process memory. It backs tests and
// the default local setup (RECORD_STORE=memory).
type MemoryRecordStore struct {
	mu     sync.RWMutex
	tables map[string][]interfaces.Record
}

var _ interfaces.IRecordStore = (*MemoryRecordStore)(nil)

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{tables: make(map[string][]interfaces.Record)}
}

func (s *MemoryRecordStore) Select(_ context.Context, table string, match interfaces.Match, order ...interfaces.Order) ([]interfaces.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []interfaces.Record
	for _, r := range s.tables[table] {
		if matches(r, match) {
			out = append(out, r.Clone())
		}
	}
	sortRecords(out, order)
	return out, nil
}

// Insert rejects the whole call when any id is already taken.
func (s *MemoryRecordStore) Insert(_ context.Context, table string, records []interfaces.Record) ([]interfaces.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := make(map[string]bool, len(s.tables[table])+len(records))
	for _, r := range s.tables[table] {
		taken[r.String("id")] = true
	}
	for _, r := range records {
		id := r.String("id")
		if id == "" {
			return nil, fmt.Errorf("%s: record without id", table)
		}
		if taken[id] {
			return nil, fmt.Errorf("%s: record %q already exists", table, id)
		}
		taken[id] = true
	}

	out := make([]interfaces.Record, 0, len(records))
	for _, r := range records {
		s.tables[table] = append(s.tables[table], r.Clone())
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *MemoryRecordStore) Update(_ context.Context, table string, match interfaces.Match, partial interfaces.Record) ([]interfaces.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []interfaces.Record
	for _, r := range s.tables[table] {
		if !matches(r, match) {
			continue
		}
		for k, v := range partial {
			r[k] = v
		}
		out = append(out, r.Clone())
	}
	return out, nil
}

func (s *MemoryRecordStore) Delete(_ context.Context, table string, match interfaces.Match) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	kept := rows[:0]
	for _, r := range rows {
		if !matches(r, match) {
			kept = append(kept, r)
		}
	}
	n := len(rows) - len(kept)
	s.tables[table] = kept
	return n, nil
}
