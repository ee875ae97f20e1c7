package embedder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SparseVector maps token ids to non-negative lexical weights. Only non-zero
// entries are kept, so JSON round-trips stay compact.
type SparseVector map[int]float64

// MarshalJSON emits {"<token_id>": weight, ...}; a nil vector stays null so
// callers can tell "not requested" from "requested but empty".
func (s SparseVector) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[strconv.Itoa(k)] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the object form produced by MarshalJSON.
func (s *SparseVector) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(SparseVector, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("sparse key %q is not a token id: %w", k, err)
		}
		out[id] = v
	}
	*s = out
	return nil
}

// decodeLexicalWeights converts one text's raw lexical weights into a
// SparseVector. Two runner representations are supported: an already-sparse
// {"<token_id>": weight} object and a dense per-token weight array from
// which zeros are filtered. Anything else decodes to an empty vector.
func decodeLexicalWeights(raw json.RawMessage) (SparseVector, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return SparseVector{}, nil
	}

	switch trimmed[0] {
	case '{':
		var mapped map[string]float64
		if err := json.Unmarshal(trimmed, &mapped); err != nil {
			return nil, fmt.Errorf("decode sparse mapping: %w", err)
		}
		out := make(SparseVector, len(mapped))
		for k, v := range mapped {
			id, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("sparse key %q is not a token id: %w", k, err)
			}
			if v != 0 {
				out[id] = v
			}
		}
		return out, nil

	case '[':
		var dense []float64
		if err := json.Unmarshal(trimmed, &dense); err != nil {
			return nil, fmt.Errorf("decode dense weight array: %w", err)
		}
		out := SparseVector{}
		for i, v := range dense {
			if v != 0 {
				out[i] = v
			}
		}
		return out, nil

	default:
		return SparseVector{}, nil
	}
}
