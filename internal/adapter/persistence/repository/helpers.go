package repository

import (
	"fmt"
	"sort"
	"strings"

	"servicescale/internal/usecase/interfaces"
)

// matches reports whether every column in m equals the record's value.
func matches(r interfaces.Record, m interfaces.Match) bool {
	for k, v := range m {
		if !valuesEqual(r[k], v) {
			return false
		}
	}
	return true
}

// valuesEqual compares across the native types different backends decode to:
// numbers numerically, booleans strictly, anything else by string form.
func valuesEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	if _, ok := b.(bool); ok {
		return false
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func compareValues(a, b any) int {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// sortRecords orders records in place by each Order in turn. Ties keep their
// original order.
func sortRecords(recs []interfaces.Record, order []interfaces.Order) {
	if len(order) == 0 {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		for _, o := range order {
			c := compareValues(recs[i][o.Column], recs[j][o.Column])
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// sortedKeys gives a deterministic column order for generated statements.
func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
