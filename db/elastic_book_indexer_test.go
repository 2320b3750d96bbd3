package db

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library/models"
)

type elasticCall struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// fakeElastic answers the few document endpoints the indexer uses.
type fakeElastic struct {
	mu    sync.Mutex
	calls []elasticCall
	docs  map[string]bool
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := elasticCall{Method: r.Method, Path: r.URL.Path}
	raw, _ := io.ReadAll(r.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}
	f.calls = append(f.calls, call)

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPut && r.URL.Path == "/books/_doc/1":
		f.docs["1"] = true
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"_index":"books","_id":"1","_version":1,"result":"created"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/books/_update/1":
		_, _ = io.WriteString(w, `{"_index":"books","_id":"1","_version":2,"result":"updated"}`)
	case r.Method == http.MethodDelete && r.URL.Path == "/books/_doc/1" && f.docs["1"]:
		delete(f.docs, "1")
		_, _ = io.WriteString(w, `{"_index":"books","_id":"1","_version":3,"result":"deleted"}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"_index":"books","_id":"1","result":"not_found"}`)
	default:
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"unexpected","reason":"unexpected request"},"status":500}`)
	}
}

func (f *fakeElastic) recorded() []elasticCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]elasticCall(nil), f.calls...)
}

func newTestIndexer(t *testing.T) (*ElasticBookIndexer, *fakeElastic) {
	t.Helper()
	fake := &fakeElastic{docs: make(map[string]bool)}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := elastic.NewClient(
		elastic.SetURL(server.URL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
	)
	require.NoError(t, err)

	return CreateElasticBookIndexer("", client), fake
}

func TestElasticBookIndexer(t *testing.T) {
	indexer, fake := newTestIndexer(t)
	ctx := context.Background()
	assert.Equal(t, INDEX_NAME, indexer.IndexName)

	book := &models.Book{Isbn: 1, Title: "X", Status: models.StatusAvailable}
	require.NoError(t, indexer.Index(ctx, book))
	require.NoError(t, indexer.UpdateStatus(ctx, 1, models.StatusLost))
	require.NoError(t, indexer.Delete(ctx, 1))
	require.NoError(t, indexer.Delete(ctx, 1), "missing document is not an error")

	calls := fake.recorded()
	require.Len(t, calls, 4)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.Equal(t, "X", calls[0].Body["title"])
	assert.Equal(t, float64(1), calls[0].Body["isbn"])

	assert.Equal(t, "/books/_update/1", calls[1].Path)
	assert.Equal(t, map[string]interface{}{"status": models.StatusLost}, calls[1].Body["doc"])

	assert.Equal(t, http.MethodDelete, calls[2].Method)
}

func TestElasticBookIndexerError(t *testing.T) {
	indexer, _ := newTestIndexer(t)

	err := indexer.Index(context.Background(), &models.Book{Isbn: 2, Title: "Y"})
	assert.Error(t, err)
}

func TestNopIndexer(t *testing.T) {
	var indexer BookIndexer = NopIndexer{}
	ctx := context.Background()

	assert.NoError(t, indexer.Index(ctx, &models.Book{Isbn: 1}))
	assert.NoError(t, indexer.UpdateStatus(ctx, 1, models.StatusLost))
	assert.NoError(t, indexer.Delete(ctx, 1))
}
