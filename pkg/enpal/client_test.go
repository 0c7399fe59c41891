package enpal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchRawReturnsBody(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/deviceMessages", r.URL.Path)
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	reader := NewHTTPDeviceReader(strings.TrimPrefix(server.URL, "http://"))
	body, err := reader.FetchRaw(context.Background())
	assert.NoError(err)
	assert.Equal("<html></html>", body)
}

func TestFetchRawNon200IsError(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	reader := NewHTTPDeviceReader(strings.TrimPrefix(server.URL, "http://"))
	_, err := reader.FetchRaw(context.Background())
	assert.Error(err)
}

func TestProbeReachable(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reader := NewHTTPDeviceReader(strings.TrimPrefix(server.URL, "http://"))
	assert.NoError(reader.Probe(context.Background()))
}

func TestProbeNon200(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	reader := NewHTTPDeviceReader(strings.TrimPrefix(server.URL, "http://"))
	assert.Error(reader.Probe(context.Background()))
}

func TestProbeUnreachable(t *testing.T) {

	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	host := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	reader := NewHTTPDeviceReader(host)
	assert.Error(reader.Probe(context.Background()))
}
