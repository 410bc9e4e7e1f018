package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

const AccessTokenHeader = "x-access-token"

// NewCORS allows the given origins to call the API; "*" allows any origin.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", AccessTokenHeader, RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
}
