package mlb

import (
	"bytes"
	"encoding/json"
)

// Kind tells how a OneOrMany field appeared in the payload.
type Kind int

const (
	KindNone Kind = iota
	KindOne
	KindMany
)

// OneOrMany decodes feed fields that are absent, a single object, or an array of objects.
type OneOrMany[T any] struct {
	kind  Kind
	items []T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = OneOrMany[T]{}
		return nil
	}

	if data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*o = OneOrMany[T]{kind: KindMany, items: many}
		return nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*o = OneOrMany[T]{kind: KindOne, items: []T{one}}
	return nil
}

// Kind reports whether the field was absent, a single value, or a list.
func (o OneOrMany[T]) Kind() Kind { return o.kind }

// Items returns the values in payload order; empty when the field was absent.
func (o OneOrMany[T]) Items() []T {
	if len(o.items) == 0 {
		return nil
	}
	return o.items
}
