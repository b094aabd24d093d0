package textlist

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// decodeStructured decodes a bracketed value. gjson is used instead of
// encoding/json because object values must keep their source order.
func decodeStructured(s string) ([]string, Encoding, error) {
	if !gjson.Valid(s) {
		return nil, EncodingMalformed, errInvalidJSON
	}

	v := gjson.Parse(s)
	switch {
	case v.IsArray():
		out := make([]string, 0, 8)
		v.ForEach(func(_, elem gjson.Result) bool {
			out = appendItem(out, stringify(elem))
			return true
		})
		return out, EncodingJSONArray, nil
	case v.IsObject():
		return objectValues(v), EncodingJSONObject, nil
	default:
		return []string{}, EncodingJSONScalar, nil
	}
}

// decodeScalar accepts a bare JSON string, number or boolean. null and
// anything that is not valid JSON are rejected.
func decodeScalar(s string) ([]string, bool) {
	if !gjson.Valid(s) {
		return nil, false
	}
	v := gjson.Parse(s)
	switch v.Type {
	case gjson.String, gjson.Number, gjson.True, gjson.False:
		return appendItem([]string{}, stringify(v)), true
	case gjson.Null:
		return []string{}, true
	default:
		return nil, false
	}
}

// objectValues returns values in JavaScript own-key order: array-index keys
// ascending, then the remaining keys in source order. A repeated key keeps
// its first position and its last value.
func objectValues(v gjson.Result) []string {
	type entry struct {
		key   string
		index uint64
		isIdx bool
		value gjson.Result
	}

	var entries []entry
	pos := make(map[string]int)
	v.ForEach(func(k, val gjson.Result) bool {
		if i, ok := pos[k.Str]; ok {
			entries[i].value = val
			return true
		}
		idx, isIdx := arrayIndex(k.Str)
		pos[k.Str] = len(entries)
		entries = append(entries, entry{key: k.Str, index: idx, isIdx: isIdx, value: val})
		return true
	})

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.isIdx && b.isIdx {
			return a.index < b.index
		}
		return a.isIdx && !b.isIdx
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = appendItem(out, stringify(e.value))
	}
	return out
}

func arrayIndex(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return n, true
}

// stringify mirrors how the storefront rendered non-string values.
// null renders as nothing and is dropped by appendItem.
func stringify(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return formatNumber(v.Num)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return ""
	}

	if v.IsArray() {
		parts := make([]string, 0, 4)
		v.ForEach(func(_, elem gjson.Result) bool {
			parts = append(parts, stringify(elem))
			return true
		})
		return strings.Join(parts, ",")
	}
	return strings.TrimSpace(v.Raw)
}

func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		// exponent without zero padding: 1e-7, not 1e-07
		s := strconv.FormatFloat(f, 'e', -1, 64)
		i := strings.IndexByte(s, 'e')
		exp := strings.TrimLeft(s[i+2:], "0")
		return s[:i+2] + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func appendItem(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}
