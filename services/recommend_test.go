package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunseok-map/all-food-map/entity"
)

func testRecommender(t *testing.T, handler http.HandlerFunc) *RecommendService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := NewRecommendService("test-key", "test-model")
	s.BaseURL = srv.URL
	s.Client = srv.Client()
	return s
}

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(b)
}

func TestRecommendStripsFences(t *testing.T) {
	s := testRecommender(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, candidateBody("```html\n<ul><li>맛집</li></ul>\n```"))
	})

	got := s.Recommend(context.Background(), "매운 거", nil)
	assert.Equal(t, "<ul><li>맛집</li></ul>", got)
}

func TestRecommendSendsSimplifiedList(t *testing.T) {
	var prompt string
	s := testRecommender(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		prompt = req.Contents[0].Parts[0].Text
		io.WriteString(w, candidateBody("<ul></ul>"))
	})

	s.Recommend(context.Background(), "국물", []entity.Restaurant{
		{Name: "할머니순두부", Category: "한식 🫕", Menu: "순두부찌개", Comment: "든든함"},
	})

	// category is trimmed to its first token, the emoji goes
	assert.Contains(t, prompt, `"category":"한식"`)
	assert.Contains(t, prompt, "할머니순두부")
	assert.Contains(t, prompt, "국물")
}

func TestRecommendHTTPErrorFallsBack(t *testing.T) {
	s := testRecommender(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got := s.Recommend(context.Background(), "아무거나", nil)
	assert.Equal(t, RecommendErrorText, got)
}

func TestRecommendEmptyCandidatesFallsBack(t *testing.T) {
	s := testRecommender(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	})

	got := s.Recommend(context.Background(), "아무거나", nil)
	assert.Equal(t, RecommendEmptyText, got)
}

func TestRecommendUnreachableFallsBack(t *testing.T) {
	s := NewRecommendService("k", "m")
	s.BaseURL = "http://127.0.0.1:1"

	got := s.Recommend(context.Background(), "아무거나", nil)
	assert.True(t, strings.Contains(got, "오류"))
}
