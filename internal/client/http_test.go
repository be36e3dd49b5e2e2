package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHTTPClient(t *testing.T) {
	c, err := CreateHTTPClient(0, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, c.Timeout)

	c, err = CreateHTTPClient(5*time.Second, "http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, c.Timeout)

	_, err = CreateHTTPClient(time.Second, "://bad")
	assert.Error(t, err)
}

func TestGetJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Go", r.URL.Query().Get("text"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-App-Id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"found":1}`))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("X-Api-App-Id", "secret")

	body, err := GetJSON(context.Background(), srv.Client(), srv.URL, url.Values{"text": {"Go"}}, headers)
	require.NoError(t, err)
	assert.JSONEq(t, `{"found":1}`, string(body))
}

func TestGetJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"forbidden"}`))
	}))
	defer srv.Close()

	_, err := GetJSON(context.Background(), srv.Client(), srv.URL, nil, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "forbidden")
	assert.Contains(t, err.Error(), "403")
}

func TestReadResponseBody_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"total":42}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	resp := &http.Response{
		Header: http.Header{"Content-Encoding": {"gzip"}},
		Body:   io.NopCloser(&buf),
	}

	body, err := ReadResponseBody(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"total":42}`, string(body))
}

func TestReadResponseBody_Plain(t *testing.T) {
	resp := &http.Response{
		Header: http.Header{},
		Body:   io.NopCloser(bytes.NewBufferString("plain")),
	}

	body, err := ReadResponseBody(resp)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(body))
}
