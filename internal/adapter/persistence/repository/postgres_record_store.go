package repository

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"servicescale/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var postgresSchema string

var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresRecordStore persists records in PostgreSQL tables named after the
// collections. Table and column names are checked against identifierRe
// before being spliced into SQL; values are always bound.
type PostgresRecordStore struct {
	db *sqlx.DB
}

var _ interfaces.IRecordStore = (*PostgresRecordStore)(nil)

func NewPostgresRecordStore(db *sqlx.DB) *PostgresRecordStore {
	return &PostgresRecordStore{db: db}
}

// Migrate creates the collection tables when they do not exist yet.
func (s *PostgresRecordStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, postgresSchema)
	return err
}

func checkIdentifiers(names ...string) error {
	for _, n := range names {
		if !identifierRe.MatchString(n) {
			return fmt.Errorf("invalid identifier %q", n)
		}
	}
	return nil
}

// whereClause renders "WHERE a = :m_a AND b = :m_b" and adds the bound values to args.
func whereClause(match interfaces.Match, args map[string]any) (string, error) {
	if len(match) == 0 {
		return "", nil
	}
	keys := sortedKeys(match)
	if err := checkIdentifiers(keys...); err != nil {
		return "", err
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = :m_%s", k, k))
		args["m_"+k] = match[k]
	}
	return " WHERE " + strings.Join(parts, " AND "), nil
}

func orderClause(order []interfaces.Order) (string, error) {
	if len(order) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		if err := checkIdentifiers(o.Column); err != nil {
			return "", err
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Column+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func buildSelect(table string, match interfaces.Match, order []interfaces.Order) (string, map[string]any, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", nil, err
	}
	args := map[string]any{}
	where, err := whereClause(match, args)
	if err != nil {
		return "", nil, err
	}
	orderBy, err := orderClause(order)
	if err != nil {
		return "", nil, err
	}
	return "SELECT * FROM " + table + where + orderBy, args, nil
}

func buildInsert(table string, r interfaces.Record) (string, map[string]any, error) {
	cols := sortedKeys(r)
	if err := checkIdentifiers(append([]string{table}, cols...)...); err != nil {
		return "", nil, err
	}
	params := make([]string, len(cols))
	for i, c := range cols {
		params[i] = ":" + c
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(params, ", "))
	return q, map[string]any(r), nil
}

func buildUpdate(table string, match interfaces.Match, partial interfaces.Record) (string, map[string]any, error) {
	cols := sortedKeys(partial)
	if err := checkIdentifiers(append([]string{table}, cols...)...); err != nil {
		return "", nil, err
	}
	args := map[string]any{}
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = :p_%s", c, c)
		args["p_"+c] = partial[c]
	}
	where, err := whereClause(match, args)
	if err != nil {
		return "", nil, err
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + where + " RETURNING *", args, nil
}

func buildDelete(table string, match interfaces.Match) (string, map[string]any, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", nil, err
	}
	args := map[string]any{}
	where, err := whereClause(match, args)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + table + where, args, nil
}

func scanRecords(rows *sqlx.Rows) ([]interfaces.Record, error) {
	defer rows.Close()
	var out []interfaces.Record
	for rows.Next() {
		m := map[string]any{}
		if err := rows.MapScan(m); err != nil {
			return nil, err
		}
		out = append(out, interfaces.Record(m))
	}
	return out, rows.Err()
}

func (s *PostgresRecordStore) Select(ctx context.Context, table string, match interfaces.Match, order ...interfaces.Order) ([]interfaces.Record, error) {
	q, args, err := buildSelect(table, match, order)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.NamedQueryContext(ctx, q, args)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// Insert writes all records in one transaction.
func (s *PostgresRecordStore) Insert(ctx context.Context, table string, records []interfaces.Record) ([]interfaces.Record, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]interfaces.Record, 0, len(records))
	for _, r := range records {
		q, args, err := buildInsert(table, r)
		if err != nil {
			return nil, err
		}
		rows, err := sqlx.NamedQueryContext(ctx, tx, q, args)
		if err != nil {
			return nil, err
		}
		inserted, err := scanRecords(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inserted...)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresRecordStore) Update(ctx context.Context, table string, match interfaces.Match, partial interfaces.Record) ([]interfaces.Record, error) {
	if len(partial) == 0 {
		return s.Select(ctx, table, match)
	}
	q, args, err := buildUpdate(table, match, partial)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.NamedQueryContext(ctx, q, args)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (s *PostgresRecordStore) Delete(ctx context.Context, table string, match interfaces.Match) (int, error) {
	q, args, err := buildDelete(table, match)
	if err != nil {
		return 0, err
	}
	res, err := s.db.NamedExecContext(ctx, q, args)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
