package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>hello</html>"))
	}))
	defer server.Close()

	body, err := New().Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>hello</html>", string(body))
}

func TestGetSetsUserAgent(t *testing.T) {
	var capturedUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := NewWithOptions(5*time.Second, "test-agent/0.1").Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "test-agent/0.1", capturedUA)
}

func TestGetNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := New().Get(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := New().Get(server.URL)
	assert.Error(t, err)
}
