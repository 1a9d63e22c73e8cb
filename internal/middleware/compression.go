package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths are served as is: Prometheus negotiates its own encoding
// and health checks are polled too often to be worth compressing.
var uncompressedPaths = []string{"/metrics", "/healthz", "/readyz"}

// Compression returns a middleware that gzips responses for clients that accept it.
// Label batches and partition views compress well; extra paths are excluded as given.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	excluded := append(append([]string{}, uncompressedPaths...), excludedPaths...)
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(excluded))
}
