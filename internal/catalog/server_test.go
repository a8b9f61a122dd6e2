package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RejectsInvalidDocument(t *testing.T) {
	_, err := NewServer([]byte(`{"quizzes": "nope"}`), nil)
	require.Error(t, err)
}

func TestServer_ServesDocument(t *testing.T) {
	s, err := NewServer(FallbackDocument(), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, DocumentPath, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, FallbackDocument(), rec.Body.Bytes())
}

func TestServer_CORS(t *testing.T) {
	s, err := NewServer(FallbackDocument(), nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, DocumentPath, nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Healthz(t *testing.T) {
	s, err := NewServer(FallbackDocument(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_UnknownPath(t *testing.T) {
	s, err := NewServer(FallbackDocument(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_IsLiveSourceForLoader(t *testing.T) {
	s, err := NewServer([]byte(oneSubjectDoc), nil)
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	c, err := NewLoader(srv.URL+DocumentPath, time.Second, nil).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s.Catalog(), c)
}
