package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/lunch_solution_center/internal/models"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

// fakeES отвечает как Elasticsearch 8 и записывает запросы.
type fakeES struct {
	mu          sync.Mutex
	requests    []recordedRequest
	indexExists bool
	searchBody  string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{r.Method, r.URL.Path, r.URL.RawQuery, string(body)})
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/":
		w.Write([]byte(`{"version":{"number":"8.19.0","build_flavor":"default"},"tagline":"You Know, for Search"}`))
	case r.Method == http.MethodHead:
		if !f.indexExists {
			w.WriteHeader(http.StatusNotFound)
		}
	case r.Method == http.MethodPut && r.URL.Path == "/recommendations":
		w.Write([]byte(`{"acknowledged":true}`))
	case strings.HasPrefix(r.URL.Path, "/recommendations/_doc/"):
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"result":"created"}`))
	case r.URL.Path == "/_bulk":
		w.Write([]byte(`{"errors":false,"items":[]}`))
	case r.URL.Path == "/recommendations/_search":
		w.Write([]byte(f.searchBody))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeES) find(method, path string) *recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].method == method && f.requests[i].path == path {
			return &f.requests[i]
		}
	}
	return nil
}

func newTestES(t *testing.T, f *fakeES) *ElasticsearchStorage {
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)

	return NewElasticsearchStorageWithURL(client, "recommendations", srv.URL+"/")
}

func sampleRecommendation(id int, name string) *models.Recommendation {
	url := "http://place.map.kakao.com/1"
	return &models.Recommendation{
		ID:         id,
		Name:       name,
		Address:    "서울 강남구 테헤란로 1",
		Reason:     "국물이 진해요",
		KakaoURL:   &url,
		Categories: []string{"음식점"},
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Likes:      3,
	}
}

func TestCreateIndex(t *testing.T) {
	f := &fakeES{}
	es := newTestES(t, f)

	require.NoError(t, es.CreateIndex(context.Background(), `{"mappings":{}}`))

	put := f.find(http.MethodPut, "/recommendations")
	require.NotNil(t, put)
	assert.JSONEq(t, `{"mappings":{}}`, put.body)
}

func TestCreateIndexAlreadyExists(t *testing.T) {
	f := &fakeES{indexExists: true}
	es := newTestES(t, f)

	require.NoError(t, es.CreateIndex(context.Background(), `{}`))

	assert.Nil(t, f.find(http.MethodPut, "/recommendations"))
}

func TestIndexRecommendation(t *testing.T) {
	f := &fakeES{}
	es := newTestES(t, f)

	require.NoError(t, es.IndexRecommendation(context.Background(), sampleRecommendation(7, "강남 순대국")))

	put := f.find(http.MethodPut, "/recommendations/_doc/7")
	require.NotNil(t, put)
	var doc models.Recommendation
	require.NoError(t, json.Unmarshal([]byte(put.body), &doc))
	assert.Equal(t, "강남 순대국", doc.Name)
	assert.Contains(t, put.query, "refresh=true")
}

func TestBulkIndexRecommendations(t *testing.T) {
	f := &fakeES{}
	es := newTestES(t, f)

	recs := []*models.Recommendation{sampleRecommendation(1, "a"), sampleRecommendation(2, "b")}
	require.NoError(t, es.BulkIndexRecommendations(context.Background(), recs))

	bulk := f.find(http.MethodPost, "/_bulk")
	require.NotNil(t, bulk)

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(bulk.body))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"index":{"_index":"recommendations","_id":"1"}}`, lines[0])
	assert.JSONEq(t, `{"index":{"_index":"recommendations","_id":"2"}}`, lines[2])
}

func TestBulkIndexEmptyIsNoop(t *testing.T) {
	f := &fakeES{}
	es := newTestES(t, f)

	require.NoError(t, es.BulkIndexRecommendations(context.Background(), nil))
	assert.Nil(t, f.find(http.MethodPost, "/_bulk"))
}

func TestSearchRecommendations(t *testing.T) {
	f := &fakeES{searchBody: `{"hits":{"hits":[
		{"_source":{"id":4,"name":"역삼 칼국수","address":"서울","reason":"면이 쫄깃","categories":["음식점"],"likes":9}},
		{"_source":{"id":5,"name":"칼국수 명가","address":"서울","reason":"국물","categories":[],"likes":1}}
	]}}`}
	es := newTestES(t, f)

	recs, err := es.SearchRecommendations(context.Background(), "칼국수", 0)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 4, recs[0].ID)
	assert.Equal(t, 9, recs[0].Likes)

	search := f.find(http.MethodPost, "/recommendations/_search")
	require.NotNil(t, search)
	assert.Equal(t, "size=20", search.query)
	assert.Contains(t, search.body, `"multi_match"`)
	assert.Contains(t, search.body, "칼국수")
}
