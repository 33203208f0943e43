package form

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is the opaque bag of submitted form fields. It is persisted verbatim
// on the lead; the scorer, profiler and templates read through the accessors
// below and ignore keys they do not know.
type Fields map[string]interface{}

// Str returns the trimmed string value for key, or "" when absent.
func (f Fields) Str(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Has reports whether key is present with a non-empty value.
func (f Fields) Has(key string) bool {
	return f.Str(key) != ""
}

// Is reports whether the value for key equals val, case-insensitively.
func (f Fields) Is(key, val string) bool {
	return strings.EqualFold(f.Str(key), val)
}

// Contains reports whether the value for key contains substr,
// case-insensitively.
func (f Fields) Contains(key, substr string) bool {
	return strings.Contains(strings.ToLower(f.Str(key)), strings.ToLower(substr))
}

// ContainsAny reports whether the value for key contains any of the given
// substrings, case-insensitively.
func (f Fields) ContainsAny(key string, substrs ...string) bool {
	for _, s := range substrs {
		if f.Contains(key, s) {
			return true
		}
	}
	return false
}

// Truthy reports whether the value for key looks affirmative
// ("yes", "true", "1", "on").
func (f Fields) Truthy(key string) bool {
	switch strings.ToLower(f.Str(key)) {
	case "yes", "true", "1", "on", "y":
		return true
	}
	return false
}

// Num parses the value for key as a number, tolerating the formats marketing
// forms produce: "12,500,000", "$2.5M", "over25m", "500k+", "under 1m".
// It returns 0 when the value is absent or unparseable.
func (f Fields) Num(key string) float64 {
	v, ok := f[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return parseNum(f.Str(key))
}

func parseNum(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	// Strip qualifiers and formatting, keep digits, dot and a magnitude suffix.
	for _, prefix := range []string{"over", "under", "about", "approx", ">", "<", "~"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "", "+", "").Replace(s)

	// Range values like "5m-25m" score on the lower bound.
	if i := strings.IndexAny(s, "-"); i > 0 {
		s = s[:i]
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	case strings.HasSuffix(s, "b"):
		multiplier = 1_000_000_000
		s = strings.TrimSuffix(s, "b")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n * multiplier
}

// Clone returns a shallow copy so callers can normalize without mutating the
// verbatim bag.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
