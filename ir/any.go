package ir

import (
	"fmt"
	"maps"
	"math"
	"math/big"
	"slices"
	"strconv"
	"time"
)

// ItemsKey holds the unkeyed children of a mixed collection in the generic
// object produced by ToAny.
const ItemsKey = "@items"

// ToAny converts y to generic data: a value becomes a string, a key-only
// or empty collection a map[string]any, a list-only collection an []any
// and a mixed collection a map[string]any with its list under ItemsKey.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	if y.Type == ValueType {
		return y.String
	}
	if len(y.Fields) == 0 && len(y.Values) != 0 {
		return toAnyList(y.Values)
	}
	res := make(map[string]any, len(y.Fields)+1)
	for k, v := range y.Fields {
		res[k] = ToAny(v)
	}
	if len(y.Values) != 0 {
		res[ItemsKey] = toAnyList(y.Values)
	}
	return res
}

func toAnyList(vs []*Node) []any {
	res := make([]any, len(vs))
	for i, v := range vs {
		res[i] = ToAny(v)
	}
	return res
}

// FromAny is the inverse of ToAny.  It also accepts the scalar types JSON
// and YAML decoders produce, formatting them as text; nil becomes an empty
// value.  An ItemsKey entry holding a list becomes the unkeyed children.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return FromString(""), nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		return FromString(strconv.FormatUint(x, 10)), nil
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return FromString(strconv.FormatFloat(x, 'g', -1, 64)), nil
		}
		return FromFloat(x), nil
	case *big.Int:
		return FromString(x.String()), nil
	case time.Time:
		return FromString(x.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return FromString(x.String()), nil
	case []any:
		res := NewCollection()
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, n)
		}
		return res, nil
	case map[string]any:
		res := NewCollection()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			e := x[k]
			if list, ok := e.([]any); ok && k == ItemsKey {
				items, err := FromAny(list)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", k, err)
				}
				res.Values = items.Values
				continue
			}
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, n)
		}
		return res, nil
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = e
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrBridge, v)
}
