package interfaces

import "context"

// IRecordStore is the generic remote CRUD surface every collection persists through.
//
// Every call may fail independently. Update returns the rows as they are after
// the update; an empty slice means nothing matched. No operation spans a
// transaction across calls.
type IRecordStore interface {
	Select(ctx context.Context, table string, match Match, order ...Order) ([]Record, error)
	Insert(ctx context.Context, table string, records []Record) ([]Record, error)
	Update(ctx context.Context, table string, match Match, partial Record) ([]Record, error)
	Delete(ctx context.Context, table string, match Match) (int, error)
}
