package reconcile

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Equal compares a stored and an incoming field value. nil, an absent
// pointer and the empty string all mean "no value" and are equal to each
// other. When either side is numeric the other may be a numeric-looking
// string and the two are compared as numbers. Times compare as ISO strings.
// Anything else must match exactly.
func Equal(a, b any) bool {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if isNumeric(a) || isNumeric(b) {
		da, okA := toDecimal(a)
		db, okB := toDecimal(b)
		if okA && okB {
			return da.Equal(db)
		}
		return false
	}

	return reflect.DeepEqual(a, b)
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" {
			return nil
		}
		return x
	case *string:
		if x == nil {
			return nil
		}
		return normalize(*x)
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return *x
	case decimal.NullDecimal:
		if !x.Valid {
			return nil
		}
		return x.Decimal
	case *time.Time:
		if x == nil {
			return nil
		}
		return normalize(isoString(*x))
	case time.Time:
		return normalize(isoString(x))
	}
	return v
}

func isoString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func isNumeric(v any) bool {
	switch v.(type) {
	case decimal.Decimal, json.Number:
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		return d, err == nil
	case string:
		s := strings.TrimSpace(x)
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		d, err := decimal.NewFromString(strconv.FormatUint(rv.Uint(), 10))
		return d, err == nil
	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rv.Float())), true
	case reflect.Float64:
		return decimal.NewFromFloat(rv.Float()), true
	}
	return decimal.Zero, false
}
