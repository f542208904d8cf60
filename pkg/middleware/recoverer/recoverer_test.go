package recoverer

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		var buf bytes.Buffer
		mw := New(slog.New(slog.NewTextHandler(&buf, nil)))

		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Zero(t, buf.Len())
	})

	t.Run("panic", func(t *testing.T) {
		var buf bytes.Buffer
		mw := New(slog.New(slog.NewTextHandler(&buf, nil)))

		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("abort handler", func(t *testing.T) {
		mw := New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
