package admin

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Coordinates is a list of x, y, width, height rectangles, used for face
// and custom coordinate regions.
type Coordinates [][]int

// encodeCoordinates serializes rectangles as "x,y,w,h|x,y,w,h".
func encodeCoordinates(coords Coordinates) string {
	groups := make([]string, 0, len(coords))
	for _, rect := range coords {
		parts := make([]string, 0, len(rect))
		for _, n := range rect {
			parts = append(parts, strconv.Itoa(n))
		}
		groups = append(groups, strings.Join(parts, ","))
	}
	return strings.Join(groups, "|")
}

// encodeContext serializes key/value metadata as "key=value|key2=value2".
// Keys are sorted so the encoding is deterministic.
func encodeContext(context map[string]string) string {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+context[key])
	}
	return strings.Join(pairs, "|")
}

// addRepeated appends one "name[]" entry per element, preserving input order.
func addRepeated(params url.Values, key string, values []string) {
	for _, value := range values {
		params.Add(key+"[]", value)
	}
}

func addIfSet(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func addInt(params url.Values, key string, value int) {
	if value > 0 {
		params.Set(key, strconv.Itoa(value))
	}
}

func addFloat(params url.Values, key string, value float64) {
	if value != 0 {
		params.Set(key, strconv.FormatFloat(value, 'g', -1, 64))
	}
}

func addBool(params url.Values, key string, value bool) {
	if value {
		params.Set(key, "true")
	}
}

// addBoolPtr sends the flag only when it was set, so false remains
// distinguishable from absent.
func addBoolPtr(params url.Values, key string, value *bool) {
	if value != nil {
		params.Set(key, strconv.FormatBool(*value))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
