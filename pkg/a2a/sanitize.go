package a2a

import (
	"math"
	"time"
)

// Sanitize walks a decoded JSON value and returns a copy that marshals to
// valid JSON: NaN and Infinity floats become nil, and time values become
// ISO-8601 strings. Payloads arriving from the bus may contain either after
// lenient upstream encoders.
func Sanitize(v any) any {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Sanitize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Sanitize(item)
		}
		return out
	default:
		return v
	}
}

// SanitizeMap is Sanitize specialized for object payloads.
func SanitizeMap(m map[string]any) map[string]any {
	out, _ := Sanitize(m).(map[string]any)
	return out
}
