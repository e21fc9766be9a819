package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToUint64 converts an identifier value (JSON number, string form field, integer) to uint64.
// Negative and fractional values are rejected.
func ToUint64(val any) (uint64, error) {
	switch v := val.(type) {
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative id: %d", v)
		}
		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative id: %d", v)
		}
		return uint64(v), nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("invalid id: %v", v)
		}
		return uint64(v), nil
	case json.Number:
		return strconv.ParseUint(v.String(), 10, 64)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		return strconv.ParseUint(s, 10, 64)
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported id type %T", val)
	}
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToDecimal converts a numeric value to a decimal.
// Strings may carry thousands separators ("1,200") as typed into the item form.
// An empty string is zero.
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(s)
	case nil:
		return decimal.Zero, nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported numeric type %T", val)
	}
}
