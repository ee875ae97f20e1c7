package reranker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixrag/modelserve/pkg/logger"
	"github.com/helixrag/modelserve/pkg/model"
)

// stubProvider scores candidates by a fixed table; unknown texts score 0.
type stubProvider struct {
	scores      map[string]float64
	scoreErr    error
	scoreCalls  int
	lastQueries []string
}

func (s *stubProvider) Acquire(ctx context.Context, device model.Device) error {
	return nil
}

func (s *stubProvider) Score(ctx context.Context, query, candidate string) (float64, error) {
	s.scoreCalls++
	s.lastQueries = append(s.lastQueries, query)
	if s.scoreErr != nil {
		return 0, s.scoreErr
	}
	return s.scores[candidate], nil
}

func newTestRouter(t *testing.T, p Provider) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &Config{
		Model:          "test-reranker",
		Host:           "127.0.0.1",
		Port:           8101,
		UseGPU:         false,
		RunnerEndpoint: "http://runner",
		RunnerTimeoutS: 5,
	}
	log := logger.NewLoggerClient(logger.Config{Level: logger.Error, ServiceName: "test"})
	service := NewService(cfg, p, log, nil)

	engine := gin.New()
	RegisterRoutes(engine, NewHandler(service))
	return engine, service
}

func postRerank(t *testing.T, engine *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/rerank", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func intPtr(n int) *int { return &n }

func TestRerankOrdersByScoreDescending(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{
		"dogs are great": 0.2,
		"cats are great": 0.9,
	}}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query: "cats",
		Candidates: []Candidate{
			{Text: "dogs are great"},
			{Text: "cats are great"},
		},
		TopK: intPtr(1),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RerankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Ranked, 1)
	assert.Equal(t, 1, resp.Ranked[0].OriginalIndex)
	assert.Equal(t, "cats are great", resp.Ranked[0].Text)
	assert.Equal(t, "cats", resp.Query)
	assert.Equal(t, "test-reranker", resp.Model)
}

func TestRerankDefaultTopK(t *testing.T) {
	scores := map[string]float64{}
	candidates := make([]Candidate, 8)
	for i := range candidates {
		text := fmt.Sprintf("candidate-%d", i)
		candidates[i] = Candidate{Text: text}
		scores[text] = float64(i)
	}
	stub := &stubProvider{scores: scores}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{Query: "q", Candidates: candidates})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RerankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Ranked, DefaultTopK)
	for i := 1; i < len(resp.Ranked); i++ {
		assert.GreaterOrEqual(t, resp.Ranked[i-1].Score, resp.Ranked[i].Score)
	}
	assert.Equal(t, 7, resp.Ranked[0].OriginalIndex)
}

func TestRerankTopKBeyondCandidates(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{"a": 1, "b": 2}}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query:      "q",
		Candidates: []Candidate{{Text: "a"}, {Text: "b"}},
		TopK:       intPtr(50),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RerankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Ranked, 2)
}

func TestRerankStableTieBreak(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{"x": 0.5, "y": 0.5}}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query:      "q",
		Candidates: []Candidate{{Text: "x"}, {Text: "y"}},
		TopK:       intPtr(2),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RerankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Ranked, 2)
	assert.Equal(t, 0, resp.Ranked[0].OriginalIndex)
	assert.Equal(t, 1, resp.Ranked[1].OriginalIndex)
}

func TestRerankPassesThroughIDAndMetadata(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{"a": 1}}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query: "q",
		Candidates: []Candidate{{
			Text:     "a",
			ID:       "doc-42",
			Metadata: map[string]any{"source": "wiki", "chunk": float64(3)},
		}},
		TopK: intPtr(1),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RerankResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Ranked, 1)
	assert.Equal(t, "doc-42", resp.Ranked[0].ID)
	assert.Equal(t, map[string]any{"source": "wiki", "chunk": float64(3)}, resp.Ranked[0].Metadata)
}

func TestRerankAppliesInstructionPrefix(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{"a": 1}}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query:      "what is a cat",
		Candidates: []Candidate{{Text: "a"}},
		TopK:       intPtr(1),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, stub.lastQueries, 1)
	assert.True(t, strings.HasPrefix(stub.lastQueries[0], "Instruct: "))
	assert.True(t, strings.HasSuffix(stub.lastQueries[0], "Query: what is a cat"))
}

func TestRerankValidation(t *testing.T) {
	tooMany := make([]Candidate, MaxCandidates+1)
	for i := range tooMany {
		tooMany[i] = Candidate{Text: "t"}
	}

	cases := []struct {
		name string
		req  RerankRequest
		want string
	}{
		{"empty query", RerankRequest{Candidates: []Candidate{{Text: "a"}}}, "query cannot be empty"},
		{"no candidates", RerankRequest{Query: "q"}, "candidates cannot be empty"},
		{"too many candidates", RerankRequest{Query: "q", Candidates: tooMany}, "max 100 candidates"},
		{"top_k zero", RerankRequest{Query: "q", Candidates: []Candidate{{Text: "a"}}, TopK: intPtr(0)}, "top_k must be between"},
		{"top_k over limit", RerankRequest{Query: "q", Candidates: []Candidate{{Text: "a"}}, TopK: intPtr(101)}, "top_k must be between"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubProvider{scores: map[string]float64{}}
			engine, _ := newTestRouter(t, stub)
			rec := postRerank(t, engine, tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
			assert.Zero(t, stub.scoreCalls, "validation must run before scoring")
		})
	}
}

func TestRerankSinglePairFailureFailsWholeRequest(t *testing.T) {
	stub := &stubProvider{scoreErr: errors.New("tokenizer blew up")}
	engine, _ := newTestRouter(t, stub)

	rec := postRerank(t, engine, RerankRequest{
		Query:      "q",
		Candidates: []Candidate{{Text: "a"}, {Text: "b"}},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reranking failed")
	assert.Contains(t, rec.Body.String(), "tokenizer blew up")
}

func TestRerankScoresSequentiallyOnePassPerCandidate(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{}}
	engine, _ := newTestRouter(t, stub)

	candidates := []Candidate{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	rec := postRerank(t, engine, RerankRequest{Query: "q", Candidates: candidates})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, len(candidates), stub.scoreCalls)
}

func TestRerankHealth(t *testing.T) {
	stub := &stubProvider{scores: map[string]float64{}}
	engine, service := newTestRouter(t, stub)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.False(t, health.Ready)
	assert.Equal(t, "model_not_loaded", health.Status)

	require.NoError(t, service.Load(context.Background()))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.True(t, health.Ready)
	assert.Equal(t, "ready", health.Status)
}
