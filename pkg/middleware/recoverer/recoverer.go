// Package recoverer turns a panicking handler into a 500 JSON response.
package recoverer

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

var serverErrorResponse = errorResponse{
	Error: "Internal server error",
}

func New(logger *slog.Logger) func(next http.Handler) http.Handler {
	const op = "middleware.recoverer.New"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error(
					"something went wrong, panic occurred",
					slog.Group(op,
						slog.Any("err", rvr),
						slog.String("stack", string(debug.Stack())),
					),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, serverErrorResponse)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
