package api

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/storage"
)

// memArchive is an in-memory Archive
type memArchive struct {
	mu      sync.Mutex
	docs    map[string]*datastream.Document
	entries []storage.Entry
	listErr error
}

func newMemArchive() *memArchive {
	return &memArchive{docs: map[string]*datastream.Document{}}
}

func (a *memArchive) Put(source string, doc *datastream.Document) (storage.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry := storage.Entry{ID: ksuid.New().String(), Source: source, StoredAt: time.Now(), Summary: doc.Summary()}
	a.docs[entry.ID] = doc
	a.entries = append([]storage.Entry{entry}, a.entries...)
	return entry, nil
}

func (a *memArchive) Get(id string) (*datastream.Document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	doc, ok := a.docs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return doc, nil
}

func (a *memArchive) Entry(id string) (storage.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range a.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return storage.Entry{}, storage.ErrNotFound
}

func (a *memArchive) List() ([]storage.Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listErr != nil {
		return nil, a.listErr
	}
	return append([]storage.Entry{}, a.entries...), nil
}

func (a *memArchive) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.docs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(a.docs, id)
	return nil
}

func TestRouter_Authentication(t *testing.T) {
	server := NewServer(newMemArchive(), ServerConfig{APIKey: testAPIKey}, NewMetrics(prometheus.NewRegistry()), nil)
	h := server.Router()

	tests := []struct {
		name   string
		path   string
		key    string
		status int
	}{
		{"health with key", "/api/v1/health", testAPIKey, http.StatusOK},
		{"health without key", "/api/v1/health", "", http.StatusUnauthorized},
		{"list with wrong key", "/api/v1/datastreams", "nope", http.StatusUnauthorized},
		{"metrics are open", "/metrics", "", http.StatusOK},
		{"unknown route", "/api/v1/nothing", testAPIKey, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	assert.InDelta(t, 1, counterValue(t, server, "datastream_auth_requests_total", statusError), 0)
}

// counterValue reads a labelled sample back from the server's /metrics output
func counterValue(t *testing.T, server *Server, name, label string) float64 {
	t.Helper()
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	prefix := fmt.Sprintf("%s{status=%q} ", name, label)
	for _, line := range strings.Split(w.Body.String(), "\n") {
		if strings.HasPrefix(line, prefix) {
			var v float64
			_, err := fmt.Sscanf(strings.TrimPrefix(line, prefix), "%g", &v)
			require.NoError(t, err)
			return v
		}
	}
	return 0
}

func TestRouter_MetricsExposeParseCounters(t *testing.T) {
	server := NewServer(newMemArchive(), ServerConfig{APIKey: testAPIKey}, NewMetrics(prometheus.NewRegistry()), nil)
	h := server.Router()

	w, _ := do(t, h, http.MethodPost, "/api/v1/datastreams", "garbage")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.InDelta(t, 1, counterValue(t, server, "datastream_parses_total", statusError), 0)
	assert.InDelta(t, 0, counterValue(t, server, "datastream_parses_total", statusSuccess), 0)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := NewServer(newMemArchive(), ServerConfig{APIKey: testAPIKey}, nil, nil).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/datastreams", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_NilMetrics(t *testing.T) {
	h := NewServer(newMemArchive(), ServerConfig{APIKey: testAPIKey}, nil, nil).Router()

	w, response := do(t, h, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_HealthReportsArchiveFailure(t *testing.T) {
	archive := newMemArchive()
	archive.listErr = io.ErrUnexpectedEOF
	h := NewServer(archive, ServerConfig{APIKey: testAPIKey}, nil, nil).Router()

	w, response := do(t, h, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Archive unavailable", response.Error)
}

func TestServer_Serve(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(newMemArchive(), ServerConfig{APIKey: testAPIKey}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	req, err := http.NewRequest(http.MethodGet, "http://"+ln.Addr().String()+"/api/v1/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", testAPIKey)

	resp, err := client.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	client.CloseIdleConnections()
}

func TestServer_ListenAndServePortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	server := NewServer(newMemArchive(), ServerConfig{Bind: "127.0.0.1", Port: port}, nil, nil)
	err = server.ListenAndServe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestServer_Addr(t *testing.T) {
	server := NewServer(nil, ServerConfig{Bind: "127.0.0.1", Port: 9200}, nil, nil)
	assert.Equal(t, "127.0.0.1:9200", server.Addr())
}
