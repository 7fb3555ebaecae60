package number

import (
	"encoding/json"
	"strconv"
)

// ToFloat64 converts supported numeric values to float64.
// JSON documents carry json.Number, YAML documents carry native Go numerics.
func ToFloat64(value any) (float64, bool) {
	switch current := value.(type) {
	case int:
		return float64(current), true
	case int8:
		return float64(current), true
	case int16:
		return float64(current), true
	case int32:
		return float64(current), true
	case int64:
		return float64(current), true
	case uint:
		return float64(current), true
	case uint8:
		return float64(current), true
	case uint16:
		return float64(current), true
	case uint32:
		return float64(current), true
	case uint64:
		return float64(current), true
	case float32:
		return float64(current), true
	case float64:
		return current, true
	case json.Number:
		parsed, err := current.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Text returns the canonical text of a scalar value, or false for
// containers and nil. Numbers keep their shortest round-trip form.
func Text(value any) (string, bool) {
	switch current := value.(type) {
	case string:
		return current, true
	case bool:
		return strconv.FormatBool(current), true
	case json.Number:
		return current.String(), true
	case float32:
		return strconv.FormatFloat(float64(current), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(current, 'g', -1, 64), true
	}

	if parsed, ok := toInt64(value); ok {
		return strconv.FormatInt(parsed, 10), true
	}
	if current, ok := value.(uint64); ok {
		return strconv.FormatUint(current, 10), true
	}

	return "", false
}

func toInt64(value any) (int64, bool) {
	switch current := value.(type) {
	case int:
		return int64(current), true
	case int8:
		return int64(current), true
	case int16:
		return int64(current), true
	case int32:
		return int64(current), true
	case int64:
		return current, true
	case uint:
		return int64(current), true
	case uint8:
		return int64(current), true
	case uint16:
		return int64(current), true
	case uint32:
		return int64(current), true
	default:
		return 0, false
	}
}
