package proof

import (
	"bytes"
	"encoding/json"
)

// canonicalize produces a deterministic JSON serialization of v: map keys
// sorted lexicographically (encoding/json already does this for Go maps),
// no insignificant whitespace, numbers left in their original decimal
// text via json.Number rather than reformatted through float64, and
// arrays left in their given order.
//
// v is first marshaled and re-decoded through json.Number so that any
// struct fields, not just maps, get normalized into the same generic
// shape before the final deterministic marshal.
func canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, &ErrCanonicalization{Reason: err.Error()}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, &ErrCanonicalization{Reason: err.Error()}
	}

	canon, err := json.Marshal(generic)
	if err != nil {
		return nil, &ErrCanonicalization{Reason: err.Error()}
	}
	return canon, nil
}
