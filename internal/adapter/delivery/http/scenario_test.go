package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/short-url/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/short-url/internal/registry"
	"github.com/vadimbarashkov/short-url/internal/shortcode"
	"github.com/vadimbarashkov/short-url/internal/usecase"
)

func TestShortURLFlow(t *testing.T) {
	reg := registry.New(
		memory.NewURLRepository(),
		shortcode.New(shortcode.DefaultLength, shortcode.DefaultCharset),
	)
	uc := usecase.New(reg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := NewRouter(httplog.NewLogger("", httplog.Options{Writer: io.Discard}), uc)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	const path = "/api/v1/short-url"

	var id float64

	t.Run("create", func(t *testing.T) {
		e := httpexpect.Default(t, server.URL)

		resp := e.POST(path).
			WithJSON(map[string]string{"longUrl": "https://example.com"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("longUrl", "https://example.com")
		resp.HasValue("name", nil)
		resp.Value("shortUrl").String().
			Length().IsEqual(shortcode.DefaultLength)
		resp.Value("shortUrl").String().
			Match(`^[A-Za-z0-9]+$`)
		resp.ContainsKey("createdAt")
		resp.ContainsKey("updatedAt")

		id = resp.Value("id").Number().Raw()
	})

	t.Run("duplicate", func(t *testing.T) {
		e := httpexpect.Default(t, server.URL)

		resp := e.POST(path).
			WithJSON(map[string]string{"longUrl": "https://example.com"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object()

		resp.HasValue("error", "URL already exists")
		resp.ContainsKey("details")
	})

	t.Run("missing long url", func(t *testing.T) {
		e := httpexpect.Default(t, server.URL)

		e.POST(path).
			WithJSON(map[string]any{}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			IsEqual(map[string]any{"error": "No long URL provided"})
	})

	t.Run("list", func(t *testing.T) {
		e := httpexpect.Default(t, server.URL)

		arr := e.GET(path).
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		arr.Length().Ge(1)
		arr.Value(0).Object().
			HasValue("id", id).
			HasValue("longUrl", "https://example.com")
	})
}
