package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/short-url/internal/entity"
)

func handleIndex(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, "Hello World!")
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type urlUseCase interface {
	ShortenURL(ctx context.Context, longURL string, name *string) (*entity.URLMapping, error)
	ListURLs(ctx context.Context) ([]entity.URLMapping, error)
}

type urlHandler struct {
	useCase  urlUseCase
	validate *validator.Validate
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *urlHandler) createShortURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		// An empty body or a JSON array carries no long URL.
		var typeErr *json.UnmarshalTypeError
		if errors.Is(err, io.EOF) || (errors.As(err, &typeErr) && typeErr.Value == "array") {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, noLongURLResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, noLongURLResponse)
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), req.LongURL, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrValidation):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, noLongURLResponse)
		case errors.Is(err, entity.ErrConflict):
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, urlExistsResponse)
		default:
			httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse(err))
		}
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLResponse(url))
}

func (h *urlHandler) listShortURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.useCase.ListURLs(r.Context())
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLResponses(urls))
}
