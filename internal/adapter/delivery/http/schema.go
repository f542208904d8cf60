package http

import (
	"time"

	"github.com/vadimbarashkov/short-url/internal/entity"
)

// urlRequest represents the body of a request to shorten a URL.
type urlRequest struct {
	LongURL string  `json:"longUrl" validate:"required"`
	Name    *string `json:"name"`
}

// urlResponse represents a stored URL mapping.
type urlResponse struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	LongURL   string    `json:"longUrl"`
	ShortURL  string    `json:"shortUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toURLResponse(url *entity.URLMapping) urlResponse {
	return urlResponse{
		ID:        url.ID,
		Name:      url.Name,
		LongURL:   url.LongURL,
		ShortURL:  url.ShortURL,
		CreatedAt: url.CreatedAt,
		UpdatedAt: url.UpdatedAt,
	}
}

func toURLResponses(urls []entity.URLMapping) []urlResponse {
	resp := make([]urlResponse, 0, len(urls))
	for i := range urls {
		resp = append(resp, toURLResponse(&urls[i]))
	}
	return resp
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

var (
	noLongURLResponse = errorResponse{
		Error: "No long URL provided",
	}

	invalidRequestBodyResponse = errorResponse{
		Error: "Invalid request body",
	}

	urlExistsResponse = errorResponse{
		Error:   "URL already exists",
		Details: "The provided long URL already exists in the database.",
	}
)

func serverErrorResponse(err error) errorResponse {
	return errorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	}
}
