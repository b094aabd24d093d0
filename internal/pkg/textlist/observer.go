package textlist

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrMalformedListEncoding marks a value that could not be decoded as a JSON
// array. It is only delivered to observers; Parse always recovers.
var ErrMalformedListEncoding = errors.New("malformed list encoding")

// Encoding identifies which representation a stored value used.
type Encoding int

const (
	EncodingJSONArray Encoding = iota
	EncodingJSONObject
	EncodingJSONScalar
	EncodingNewline
	EncodingComma
	EncodingMalformed
)

func (e Encoding) String() string {
	switch e {
	case EncodingJSONArray:
		return "json_array"
	case EncodingJSONObject:
		return "json_object"
	case EncodingJSONScalar:
		return "json_scalar"
	case EncodingNewline:
		return "newline"
	case EncodingComma:
		return "comma"
	case EncodingMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Event describes a value that was read through a non-canonical path.
type Event struct {
	Field    string
	Raw      string
	Encoding Encoding
	// Reason wraps ErrMalformedListEncoding.
	Reason error
}

// Observer is a diagnostic callback. It must not panic; its return has no
// effect on parsing.
type Observer func(Event)

func (o Options) report(raw string, enc Encoding, cause error) {
	if o.Observer == nil {
		return
	}
	reason := fmt.Errorf("%w: %s", ErrMalformedListEncoding, enc)
	if cause != nil {
		reason = fmt.Errorf("%w: %s: %v", ErrMalformedListEncoding, enc, cause)
	}
	o.Observer(Event{Field: o.Field, Raw: raw, Encoding: enc, Reason: reason})
}

// ZapObserver logs every event at debug level. Raw values are truncated.
func ZapObserver(log *zap.Logger) Observer {
	if log == nil {
		return nil
	}
	return func(e Event) {
		log.Debug("legacy list encoding",
			zap.String("field", e.Field),
			zap.Stringer("encoding", e.Encoding),
			zap.String("raw", truncate(e.Raw, 120)),
			zap.Error(e.Reason),
		)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
