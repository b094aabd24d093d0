package textlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Input is a request field that admin forms send either as textarea text
// (one item per line) or as a JSON array.
type Input struct {
	raw   string
	items []string
	list  bool
}

// TextInput builds an Input from textarea text.
func TextInput(s string) Input { return Input{raw: s} }

// ListInput builds an Input from already separated items.
func ListInput(items ...string) Input { return Input{items: items, list: true} }

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*in = Input{}
		return nil
	}

	if data[0] == '[' {
		if !gjson.ValidBytes(data) {
			return fmt.Errorf("textlist: %w", errInvalidJSON)
		}
		items := make([]string, 0, 8)
		gjson.ParseBytes(data).ForEach(func(_, v gjson.Result) bool {
			items = append(items, stringify(v))
			return true
		})
		*in = Input{items: items, list: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*in = Input{raw: s}
	return nil
}

func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Items())
}

// Items normalizes the input. Textarea text is split on newlines only, so a
// line containing commas or brackets stays one item.
func (in Input) Items() []string {
	if in.list {
		return Clean(in.items)
	}
	return Clean(strings.Split(in.raw, "\n"))
}

// Encode is shorthand for Encode(in.Items()).
func (in Input) Encode() string {
	return Encode(in.Items())
}
