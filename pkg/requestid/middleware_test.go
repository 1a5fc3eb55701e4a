package requestid_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/categoryd/pkg/requestid"
)

// serve runs the middleware for one request and returns the id seen by the
// handler together with the response header.
func serve(t *testing.T, header string) (inCtx, inResp string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/category?url=abc", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return inCtx, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when absent", func(t *testing.T) {
		t.Parallel()
		inCtx, inResp := serve(t, "")
		require.NotEmpty(t, inCtx)
		assert.Equal(t, inCtx, inResp)
		_, err := uuid.Parse(inCtx)
		assert.NoError(t, err)
	})

	t.Run("distinct ids per request", func(t *testing.T) {
		t.Parallel()
		a, _ := serve(t, "")
		b, _ := serve(t, "")
		assert.NotEqual(t, a, b)
	})

	valid := []string{
		"abc123",
		"edge_proxy-7",
		"550e8400-e29b-41d4-a716-446655440000",
		strings.Repeat("a", 128),
	}
	for _, id := range valid {
		t.Run("keeps "+id[:min(len(id), 16)], func(t *testing.T) {
			t.Parallel()
			inCtx, inResp := serve(t, id)
			assert.Equal(t, id, inCtx)
			assert.Equal(t, id, inResp)
		})
	}

	invalid := map[string]string{
		"space":     "req id",
		"slash":     "a/b",
		"markup":    "<script>",
		"newline":   "a\nb",
		"too long":  strings.Repeat("a", 129),
		"non ascii": "ид",
	}
	for name, id := range invalid {
		t.Run("replaces "+name, func(t *testing.T) {
			t.Parallel()
			inCtx, inResp := serve(t, id)
			assert.NotEqual(t, id, inCtx)
			assert.Equal(t, inCtx, inResp)
			_, err := uuid.Parse(inCtx)
			assert.NoError(t, err)
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Equal(t, "r-1", requestid.FromContext(requestid.WithContext(context.Background(), "r-1")))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	extract := requestid.LoggerExtractor()
	log := slog.New(slog.NewTextHandler(buf, nil))

	attr, ok := extract(requestid.WithContext(context.Background(), "r-1"))
	require.True(t, ok)
	log.Info("lookup", attr)
	assert.Contains(t, buf.String(), "request_id=r-1")

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
