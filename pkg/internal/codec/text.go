package codec

import "io"

// TextEncoder delegates to a plain text writer such as traces.WriteText.
type TextEncoder[T any] struct {
	write func(io.Writer, T) error
}

func NewTextEncoder[T any](write func(io.Writer, T) error) *TextEncoder[T] {
	return &TextEncoder[T]{write: write}
}

func (e *TextEncoder[T]) Encode(w io.Writer, elem T) error {
	return e.write(w, elem)
}
