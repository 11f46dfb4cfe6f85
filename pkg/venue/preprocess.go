package venue

import "strconv"

// Property defaults applied when a raw feature omits a value or stores
// something that cannot be read as a number.
const (
	DefaultHeight     = 3.0
	DefaultBaseHeight = 0.0
	DefaultLevel      = 0
	DefaultCategory   = CategoryCommon
)

// Preprocess turns raw features into the resolved working set. Auxiliary
// wall geometry is appended first so wall features share the same id
// space, then every feature gets a sequential id matching its position and
// defaulted properties. Defaulting is the error-recovery path for
// malformed data; this never fails.
func Preprocess(fc FeatureCollection, walls []RawFeature) []Feature {
	raw := make([]RawFeature, 0, len(fc.Features)+len(walls))
	raw = append(raw, fc.Features...)
	raw = append(raw, walls...)

	features := make([]Feature, len(raw))
	for i, rf := range raw {
		features[i] = Feature{
			ID:         i,
			Name:       stringProp(rf.Properties, "name", ""),
			Category:   Category(stringProp(rf.Properties, "category", string(DefaultCategory))),
			Level:      intProp(rf.Properties, "level", DefaultLevel),
			Height:     floatProp(rf.Properties, "height", DefaultHeight),
			BaseHeight: floatProp(rf.Properties, "base_height", DefaultBaseHeight),
			Color:      stringProp(rf.Properties, "color", ""),
			IsOutline:  boolProp(rf.Properties, "isOutline", false),
			Geometry:   rf.Geometry,
		}
	}
	return features
}

// asFloat reads a loosely typed property value as a number. JSON decoding
// yields float64 for all numbers; surveyed exports sometimes store numbers
// as strings.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func floatProp(props map[string]any, key string, def float64) float64 {
	v, ok := props[key]
	if !ok {
		return def
	}
	f, ok := asFloat(v)
	if !ok || f != f { // reject NaN
		return def
	}
	return f
}

func intProp(props map[string]any, key string, def int) int {
	v, ok := props[key]
	if !ok {
		return def
	}
	f, ok := asFloat(v)
	if !ok || f != f {
		return def
	}
	return int(f)
}

func stringProp(props map[string]any, key, def string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return def
}

func boolProp(props map[string]any, key string, def bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return def
}
