package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/codercollo/linqyard/backend/internal/jsonlog"
	"github.com/codercollo/linqyard/backend/internal/static"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an application over a temporary static directory
// populated with files (name -> contents)
func newTestApplication(t *testing.T, files map[string]string) *application {
	t.Helper()

	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}

	dir, err := static.Resolve(root)
	require.NoError(t, err)

	var cfg config
	cfg.env = "development"
	cfg.health.echo = true
	cfg.health.echoVar = "TEST"
	cfg.metrics = true

	return &application{
		config: cfg,
		logger: jsonlog.New(io.Discard, jsonlog.LevelInfo),
		static: dir,
	}
}

// do sends a request through the full middleware chain
func do(t *testing.T, h http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
