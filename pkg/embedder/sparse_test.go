package embedder

import (
	"encoding/json"
	"testing"
)

func TestDecodeLexicalWeightsNull(t *testing.T) {
	out, err := decodeLexicalWeights(json.RawMessage(`null`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty vector, got %v", out)
	}
	if out == nil {
		t.Error("expected non-nil vector for explicit null weights")
	}
}

func TestDecodeLexicalWeightsMapping(t *testing.T) {
	out, err := decodeLexicalWeights(json.RawMessage(` {"5": 0.1, "9": 0, "12": 2.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[5] != 0.1 || out[12] != 2.5 {
		t.Errorf("unexpected weights: %v", out)
	}
	if _, ok := out[9]; ok {
		t.Error("zero weight must be filtered")
	}
}

func TestDecodeLexicalWeightsDenseArray(t *testing.T) {
	out, err := decodeLexicalWeights(json.RawMessage(`[0, 0, 1.5, 0, 0.5]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[2] != 1.5 || out[4] != 0.5 {
		t.Errorf("unexpected weights: %v", out)
	}
}

func TestDecodeLexicalWeightsBadKey(t *testing.T) {
	_, err := decodeLexicalWeights(json.RawMessage(`{"abc": 0.5}`))
	if err == nil {
		t.Fatal("expected error for non-integer token id")
	}
}

func TestDecodeLexicalWeightsUnknownShape(t *testing.T) {
	out, err := decodeLexicalWeights(json.RawMessage(`"surprise"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty vector, got %v", out)
	}
}

func TestSparseVectorMarshalNilVsEmpty(t *testing.T) {
	var null SparseVector
	data, err := json.Marshal(null)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("nil vector should marshal to null, got %s", data)
	}

	data, err = json.Marshal(SparseVector{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty vector should marshal to {}, got %s", data)
	}
}

func TestSparseVectorRoundTrip(t *testing.T) {
	in := SparseVector{3: 0.25, 77: 1.5}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out SparseVector
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[3] != 0.25 || out[77] != 1.5 {
		t.Errorf("round trip mismatch: %v", out)
	}
}
