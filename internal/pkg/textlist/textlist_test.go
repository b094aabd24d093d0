package textlist

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "whitespace only", raw: "   ", want: []string{}},
		{name: "json array", raw: `["a","b"]`, want: []string{"a", "b"}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "empty object", raw: `{}`, want: []string{}},
		{name: "index object", raw: `{"0":"x","1":"y"}`, want: []string{"x", "y"}},
		{name: "object key order", raw: `{"b":"x","2":"y","a":"z","1":"w"}`, want: []string{"w", "y", "x", "z"}},
		{name: "object duplicate key", raw: `{"a":"x","b":"y","a":"z"}`, want: []string{"z", "y"}},
		{name: "leading zero key is not an index", raw: `{"01":"x","1":"y"}`, want: []string{"y", "x"}},
		{name: "comma separated", raw: "a, b, c", want: []string{"a", "b", "c"}},
		{name: "newline separated", raw: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "crlf separated", raw: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "newline wins over comma", raw: "a\nb,c", want: []string{"a", "b,c"}},
		{name: "empty pieces dropped", raw: "a,, ,b,", want: []string{"a", "b"}},
		{name: "padded array", raw: "  [\"Wi-Fi\", \"Pool\"]\n", want: []string{"Wi-Fi", "Pool"}},
		{name: "array items trimmed", raw: `[" Wi-Fi ", "", "  "]`, want: []string{"Wi-Fi"}},
		{name: "array non strings", raw: `[1, 1.50, true, false, null, "x"]`, want: []string{"1", "1.5", "true", "false", "x"}},
		{name: "nested array", raw: `[["a","b"],"c"]`, want: []string{"a,b", "c"}},
		{name: "nested object", raw: `[{"k":"v"}]`, want: []string{`{"k":"v"}`}},
		{name: "object numbers", raw: `{"a":1,"b":2e21}`, want: []string{"1", "2e+21"}},
		{name: "exponent formatting", raw: `[1e-7, 0.000001, 1.5e-10, -3e300]`, want: []string{"1e-7", "0.000001", "1.5e-10", "-3e+300"}},
		{name: "bare scalar not decoded", raw: `"Louvre"`, want: []string{`"Louvre"`}},
		{name: "invalid bracketed keeps brackets", raw: "[abc]", want: []string{"[abc]"}},
		{name: "invalid bracketed comma split", raw: "[a, b]", want: []string{"[a", "b]"}},
		{name: "unterminated bracket", raw: "[a,b", want: []string{"[a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tt.raw)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseWith_Presets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		raw  string
		want []string
	}{
		{name: "languages ignore objects", opts: Languages, raw: `{"a":"English"}`, want: []string{`{"a":"English"}`}},
		{name: "languages object with comma", opts: Languages, raw: `{"a":"English","b":"French"}`, want: []string{`{"a":"English"`, `"b":"French"}`}},
		{name: "languages array", opts: Languages, raw: `["English","French"]`, want: []string{"English", "French"}},
		{name: "inclusions object", opts: Inclusions, raw: `{"meals":"Breakfast","transfer":"Airport pickup"}`, want: []string{"Breakfast", "Airport pickup"}},
		{name: "attractions string scalar", opts: Attractions, raw: `"Eiffel Tower"`, want: []string{"Eiffel Tower"}},
		{name: "attractions number scalar", opts: Attractions, raw: `42`, want: []string{"42"}},
		{name: "attractions bool scalar", opts: Attractions, raw: ` true `, want: []string{"true"}},
		{name: "attractions null", opts: Attractions, raw: `null`, want: []string{}},
		{name: "attractions blank string scalar", opts: Attractions, raw: `"  "`, want: []string{}},
		{name: "attractions plain text", opts: Attractions, raw: "Louvre, Orsay", want: []string{"Louvre", "Orsay"}},
		{name: "attractions object", opts: Attractions, raw: `{"x":"Louvre"}`, want: []string{"Louvre"}},
		{name: "zero options object is text", opts: Options{}, raw: `{"x":"Louvre"}`, want: []string{`{"x":"Louvre"}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseWith(tt.raw, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseWith(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParsePtr(t *testing.T) {
	assert.Equal(t, []string{}, ParsePtr(nil, Amenities))

	raw := "Pool\nSpa"
	assert.Equal(t, []string{"Pool", "Spa"}, ParsePtr(&raw, Amenities))
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"[", "]", "{", "}", "[{", "{]", `["a",`, `{"a":}`, "[\x00]", "\n", ",", "[,]",
		strings.Repeat("[", 1000) + strings.Repeat("]", 1000),
		`{"a":[1,{"b":null}]}`, "[\"\\ud800\"]",
	}
	for _, raw := range inputs {
		for _, opts := range []Options{Amenities, Inclusions, Languages, Attractions} {
			assert.NotPanics(t, func() {
				got := ParseWith(raw, opts)
				assert.NotNil(t, got)
			}, "input %q", raw)
		}
	}
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
	assert.Equal(t, "", Serialize([]string{}))
	assert.Equal(t, "Wi-Fi\nPool", Serialize([]string{"Wi-Fi", "Pool"}))
}

func TestSerialize_RoundTrip(t *testing.T) {
	lists := [][]string{
		{},
		{"Wi-Fi"},
		{"Wi-Fi", "Pool"},
		{"Breakfast, lunch and dinner", "Airport transfer"},
		{"a", "b", "c", "d"},
		{"Free parking", "Spa (extra charge)", "24h front desk"},
	}
	for _, l := range lists {
		got := Parse(Serialize(l))
		if diff := cmp.Diff(l, got); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", l, diff)
		}
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "[]", Encode(nil))
	assert.Equal(t, `["Wi-Fi","Pool"]`, Encode([]string{" Wi-Fi", "", "Pool "}))
}

func TestEncode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("ab ,\n[]{}\"\\:é日")

	for i := 0; i < 500; i++ {
		n := rng.Intn(6)
		list := make([]string, 0, n)
		for len(list) < n {
			var b strings.Builder
			for j := 0; j < 1+rng.Intn(12); j++ {
				b.WriteRune(alphabet[rng.Intn(len(alphabet))])
			}
			if item := strings.TrimSpace(b.String()); item != "" {
				list = append(list, item)
			}
		}

		for _, opts := range []Options{Amenities, Inclusions, Languages, Attractions} {
			got := ParseWith(Encode(list), opts)
			if diff := cmp.Diff(list, got); diff != "" {
				t.Fatalf("round trip of %q mismatch (-want +got):\n%s", list, diff)
			}
		}
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical(`["a","b"]`, Amenities))
	assert.True(t, IsCanonical(`[]`, Amenities))
	assert.False(t, IsCanonical(`["a", "b"]`, Amenities))
	assert.False(t, IsCanonical("a,b", Amenities))
	assert.False(t, IsCanonical("", Amenities))
}

func TestObserver(t *testing.T) {
	var events []Event
	opts := Amenities.WithObserver(func(e Event) { events = append(events, e) })

	ParseWith(`["a"]`, opts)
	assert.Empty(t, events, "canonical arrays are not reported")

	got := ParseWith("[a,b]", opts)
	assert.Equal(t, []string{"[a", "b]"}, got)
	require.Len(t, events, 1)
	assert.Equal(t, "amenities", events[0].Field)
	assert.Equal(t, EncodingMalformed, events[0].Encoding)
	assert.True(t, errors.Is(events[0].Reason, ErrMalformedListEncoding))

	events = nil
	ParseWith("a\nb", opts)
	require.Len(t, events, 1)
	assert.Equal(t, EncodingNewline, events[0].Encoding)

	events = nil
	ParseWith(`{"0":"x"}`, opts)
	require.Len(t, events, 1)
	assert.Equal(t, EncodingJSONObject, events[0].Encoding)
}

func TestObserver_DoesNotAffectResult(t *testing.T) {
	raw := "x, y\nz"
	silent := ParseWith(raw, Amenities)
	loud := ParseWith(raw, Amenities.WithObserver(func(Event) {}))
	assert.Equal(t, silent, loud)
}
