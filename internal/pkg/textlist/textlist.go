// Package textlist normalizes the loosely-typed list columns used across the
// catalog (amenities, inclusions, languages, nearby attractions).
//
// Over time those columns have been written as JSON arrays, JSON objects,
// newline-separated text and comma-separated text. Parse reads every one of
// those encodings and never fails; Encode writes the canonical JSON array and
// Serialize produces the one-item-per-line form used by textarea inputs.
//
// All functions are pure and safe for concurrent use.
package textlist

import (
	"encoding/json"
	"strings"
)

// Options controls which structured shapes Parse accepts before falling back
// to the newline/comma split.
type Options struct {
	// AllowObjectFallback makes {...} input eligible for structured decoding;
	// a non-empty object yields its values.
	AllowObjectFallback bool
	// AllowScalarFallback makes any JSON scalar ("x", 42, true) decode to a
	// single-item list.
	AllowScalarFallback bool
	// Field names the column for diagnostics.
	Field string
	// Observer receives an Event whenever the input was not a canonical
	// JSON array. It may be nil.
	Observer Observer
}

// Presets for the columns that carry free-text lists.
var (
	Amenities   = Options{Field: "amenities", AllowObjectFallback: true}
	Inclusions  = Options{Field: "inclusions", AllowObjectFallback: true}
	Languages   = Options{Field: "languages"}
	Attractions = Options{Field: "attractions", AllowObjectFallback: true, AllowScalarFallback: true}
)

// WithObserver returns a copy of o reporting to obs.
func (o Options) WithObserver(obs Observer) Options {
	o.Observer = obs
	return o
}

// Parse reads raw using the Amenities preset.
func Parse(raw string) []string {
	return ParseWith(raw, Amenities)
}

// ParsePtr is ParseWith for nullable columns; nil is an empty list.
func ParsePtr(raw *string, opts Options) []string {
	if raw == nil {
		return []string{}
	}
	return ParseWith(*raw, opts)
}

// ParseWith converts a persisted list value into trimmed, non-empty items.
// It never fails: undecodable input is split heuristically.
func ParseWith(raw string, opts Options) []string {
	if raw == "" {
		return []string{}
	}

	trimmed := strings.TrimSpace(raw)
	if looksStructured(trimmed, opts) {
		items, enc, err := decodeStructured(trimmed)
		if err == nil {
			if enc != EncodingJSONArray {
				opts.report(raw, enc, nil)
			}
			return items
		}
		opts.report(raw, EncodingMalformed, err)
		items, _ = split(raw)
		return items
	} else if opts.AllowScalarFallback {
		if items, ok := decodeScalar(trimmed); ok {
			opts.report(raw, EncodingJSONScalar, nil)
			return items
		}
	}

	items, enc := split(raw)
	opts.report(raw, enc, nil)
	return items
}

// Serialize joins items one per line, the convention of multi-line inputs.
func Serialize(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return strings.Join(items, "\n")
}

// Encode returns the canonical JSON array stored in list columns.
func Encode(items []string) string {
	clean := Clean(items)
	data, err := json.Marshal(clean)
	if err != nil {
		// []string always marshals
		return "[]"
	}
	return string(data)
}

// IsCanonical reports whether raw is already stored as Encode would write it.
func IsCanonical(raw string, opts Options) bool {
	opts.Observer = nil
	return raw == Encode(ParseWith(raw, opts))
}

// Clean trims every item and drops the empty ones. The result is never nil.
func Clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func looksStructured(s string, opts Options) bool {
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return true
	}
	return opts.AllowObjectFallback && strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// split is the legacy fallback: newline wins over comma.
func split(raw string) ([]string, Encoding) {
	if strings.Contains(raw, "\n") {
		return Clean(strings.Split(raw, "\n")), EncodingNewline
	}
	return Clean(strings.Split(raw, ",")), EncodingComma
}
