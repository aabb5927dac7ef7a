package http_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	linkcheckhttp "github.com/fwojciec/linkcheck/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("sends HEAD request and returns status", func(t *testing.T) {
		t.Parallel()

		var method, ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			ua = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		prober := linkcheckhttp.NewProber(linkcheckhttp.WithUserAgent("linkcheck-test"))

		status, err := prober.Probe(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, http.MethodHead, method)
		assert.Equal(t, "linkcheck-test", ua)
	})

	t.Run("returns error status without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		status, err := linkcheckhttp.NewProber().Probe(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		status, err := linkcheckhttp.NewProber().Probe(context.Background(), server.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		prober := linkcheckhttp.NewProber(linkcheckhttp.WithTimeout(10 * time.Millisecond))

		_, err := prober.Probe(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := linkcheckhttp.NewProber().Probe(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("reports dial failure as net.OpError", func(t *testing.T) {
		t.Parallel()

		// Grab a free port and close it so nothing is listening.
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		require.NoError(t, ln.Close())

		_, err = linkcheckhttp.NewProber().Probe(context.Background(), "http://"+addr+"/")
		require.Error(t, err)

		var opErr *net.OpError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, "dial", opErr.Op)
	})
}
