package interfaces

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the fixed-width UTC layout used for every stored timestamp,
// so that lexical order on the stored strings equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one row as seen through the record store: column name -> value.
//
// Backends return whatever native types they decode (float64 from DynamoDB,
// int64 from PostgreSQL, []byte for text in some drivers); the accessors below
// coerce those to the type the caller expects and fall back to the zero value.
type Record map[string]any

// Match is an equality filter: every column must equal the given value.
type Match map[string]any

// Order sorts a select by one column.
type Order struct {
	Column string
	Desc   bool
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return FormatTimestamp(v)
	default:
		return ""
	}
}

func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string, []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(r.String(key)), 64)
		return f
	default:
		return 0
	}
}

func (r Record) Int(key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	default:
		return int(r.Float(key))
	}
}

func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string, []byte:
		b, _ := strconv.ParseBool(r.String(key))
		return b
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// Time parses timestamps written by FormatTimestamp (or any RFC 3339 string).
func (r Record) Time(key string) time.Time {
	if t, ok := r[key].(time.Time); ok {
		return t.UTC()
	}
	s := r.String(key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// TimePtr is Time for optional columns: empty values yield nil.
func (r Record) TimePtr(key string) *time.Time {
	t := r.Time(key)
	if t.IsZero() {
		return nil
	}
	return &t
}
