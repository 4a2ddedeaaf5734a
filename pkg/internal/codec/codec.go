package codec

import (
	"fmt"
	"io"

	"github.com/joeydtaylor/raysum/pkg/internal/types"
)

// Decoder reads one value of T.
type Decoder[T any] interface {
	Decode(io.Reader) (T, error)
}

// Encoder writes one value of T.
type Encoder[T any] interface {
	Encode(io.Writer, T) error
}

// Output formats understood by ForFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ForFormat picks the encoder for format. text is the fixed column writer of
// the value type; an empty format means text.
func ForFormat[T any](format string, text func(io.Writer, T) error) (Encoder[T], error) {
	switch format {
	case "", FormatText:
		return NewTextEncoder(text), nil
	case FormatJSON:
		return NewJSONEncoder[T](), nil
	}
	return nil, fmt.Errorf("output format %q not in text, json: %w", format, types.ErrInvalidArgument)
}
