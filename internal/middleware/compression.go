package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a gzip middleware for clients that accept it.
// The metrics endpoint is excluded; the Prometheus handler negotiates its own
// encoding with the scraper.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"}))
}
