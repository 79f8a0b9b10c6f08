package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-diary-api/internal/domain/entity"
)

type recorded struct {
	method string
	path   string
	body   string
}

func newFakeES(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*DiaryIndex, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewDiaryIndex(es, "diary_entries"), &calls
}

func TestDiaryIndex_IndexEntry(t *testing.T) {
	idx, calls := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	err := idx.IndexEntry(context.Background(), &entity.DiaryEntry{
		ID: "e1", UserID: "u1", Title: "Rainy day", Content: "stayed in", Mood: entity.MoodCalm,
		Tags: []string{"rain"}, CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/diary_entries/_doc/e1", call.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(call.body), &doc))
	assert.Equal(t, "u1", doc["user_id"])
	assert.Equal(t, "Rainy day", doc["title"])
}

func TestDiaryIndex_SearchEntries(t *testing.T) {
	idx, calls := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"e2"},{"_id":"e1"}]}}`))
	})

	ids, err := idx.SearchEntries(context.Background(), "u1", "rain", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2", "e1"}, ids)

	require.Len(t, *calls, 1)
	assert.True(t, strings.HasSuffix((*calls)[0].path, "/_search"))
	assert.Contains(t, (*calls)[0].body, `"user_id":"u1"`)
}

func TestDiaryIndex_SearchError(t *testing.T) {
	idx, _ := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := idx.SearchEntries(context.Background(), "u1", "rain", 10)
	assert.Error(t, err)
}

func TestDiaryIndex_DeleteMissingIsFine(t *testing.T) {
	idx, _ := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	})

	assert.NoError(t, idx.DeleteEntry(context.Background(), "e1"))
}
