package admin

import (
	"sort"
	"strings"
)

// Transformation describes a media manipulation pipeline applied by the
// service. Either set Raw to a preformatted transformation string, or set
// the structured fields and let String assemble the wire format. Raw takes
// precedence when both are set.
//
// Fields are strings because the service accepts relative and symbolic
// values (e.g. Width "0.5", Quality "auto").
type Transformation struct {
	Raw string

	Angle       string
	AspectRatio string
	Background  string
	Border      string
	Color       string
	Crop        string
	DPR         string
	Density     string
	Effect      string
	FetchFormat string
	Flags       string
	Gravity     string
	Height      string
	Opacity     string
	Overlay     string
	Quality     string
	Radius      string
	Underlay    string
	Width       string
	X           string
	Y           string
	Zoom        string
}

// String normalizes the transformation to the wire format the service
// expects: shorthand "code_value" pairs, sorted, joined with commas.
func (t Transformation) String() string {
	if t.Raw != "" {
		return t.Raw
	}

	fields := []struct {
		code  string
		value string
	}{
		{"a", t.Angle},
		{"ar", t.AspectRatio},
		{"b", t.Background},
		{"bo", t.Border},
		{"c", t.Crop},
		{"co", t.Color},
		{"dn", t.Density},
		{"dpr", t.DPR},
		{"e", t.Effect},
		{"f", t.FetchFormat},
		{"fl", t.Flags},
		{"g", t.Gravity},
		{"h", t.Height},
		{"l", t.Overlay},
		{"o", t.Opacity},
		{"q", t.Quality},
		{"r", t.Radius},
		{"u", t.Underlay},
		{"w", t.Width},
		{"x", t.X},
		{"y", t.Y},
		{"z", t.Zoom},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			parts = append(parts, f.code+"_"+f.value)
		}
	}
	sort.Strings(parts)

	return strings.Join(parts, ",")
}

// RawTransformation wraps a preformatted transformation string.
func RawTransformation(s string) Transformation {
	return Transformation{Raw: s}
}
