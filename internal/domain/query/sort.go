package query

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Accessors maps sortable property names to value getters.
type Accessors[T any] map[string]func(item *T) any

// Sort orders items stably by the given properties. Strings are compared with
// a collator for the locale, nil values sort last, unknown properties are
// skipped with a warning.
func Sort[T any](items []*T, props []SortProperty, accessors Accessors[T], tag language.Tag, logger *slog.Logger) {
	if len(items) < 2 || len(props) == 0 {
		return
	}
	type key struct {
		get  func(*T) any
		desc bool
	}
	keys := make([]key, 0, len(props))
	for _, p := range props {
		get, ok := accessors[p.Property]
		if !ok {
			if logger != nil {
				logger.Warn("Unknown sort property ignored", slog.String("property", p.Property))
			}

			continue
		}
		keys = append(keys, key{get: get, desc: p.Descending})
	}
	if len(keys) == 0 {
		return
	}
	// collate.Collator is not safe for concurrent use.
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b *T) int {
		for _, k := range keys {
			av, aok := normalize(k.get(a))
			bv, bok := normalize(k.get(b))
			switch {
			case !aok && !bok:
				continue
			case !aok:
				return 1
			case !bok:
				return -1
			}
			r := compareValues(c, av, bv)
			if r == 0 {
				continue
			}
			if k.desc {
				return -r
			}

			return r
		}

		return 0
	})
}

func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case *string:
		return derefAny(x)
	case *int:
		return derefAny(x)
	case *int64:
		return derefAny(x)
	case *float64:
		return derefAny(x)
	case *bool:
		return derefAny(x)
	case *time.Time:
		return derefAny(x)
	case *decimal.Decimal:
		return derefAny(x)
	default:
		return v, true
	}
}

func derefAny[V any](v *V) (any, bool) {
	if v == nil {
		return nil, false
	}

	return *v, true
}

func compareValues(c *collate.Collator, a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return c.CompareString(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBool(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case fmt.Stringer:
		if y, ok := b.(fmt.Stringer); ok {
			return c.CompareString(x.String(), y.String())
		}
	}

	return c.CompareString(fmt.Sprint(a), fmt.Sprint(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
