//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogLevelForStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   zerolog.Level
	}{
		{name: "saved partition", statusCode: http.StatusOK, expected: zerolog.InfoLevel},
		{name: "redirect", statusCode: http.StatusMovedPermanently, expected: zerolog.InfoLevel},
		{name: "invalid crates per pallet", statusCode: http.StatusBadRequest, expected: zerolog.WarnLevel},
		{name: "unknown reference", statusCode: http.StatusNotFound, expected: zerolog.WarnLevel},
		{name: "internal error", statusCode: http.StatusInternalServerError, expected: zerolog.ErrorLevel},
		{name: "storage unavailable", statusCode: http.StatusServiceUnavailable, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, logLevelForStatus(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		status        int
		expectedLevel string
		expectedRoute string
		reception     bool
	}{
		{
			name:          "partition view",
			path:          "/api/receptions/" + testReception + "/partition",
			status:        http.StatusOK,
			expectedLevel: "info",
			expectedRoute: partitionPath,
			reception:     true,
		},
		{
			name:          "save rejected",
			path:          "/api/receptions/" + testReception + "/partition",
			status:        http.StatusUnprocessableEntity,
			expectedLevel: "warn",
			expectedRoute: partitionPath,
			reception:     true,
		},
		{
			name:          "unmatched route",
			path:          "/api/nowhere",
			status:        http.StatusNotFound,
			expectedLevel: "warn",
			expectedRoute: "unmatched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), withTenant(testTenant), RequestLogger())
			router.GET(partitionPath, func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("User-Agent", "scanner/2.1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			line := findLog(t, buf, "HTTP request")
			assert.Equal(t, tt.expectedLevel, line["level"])
			assert.Equal(t, tt.expectedRoute, line["route"])
			assert.Equal(t, float64(tt.status), line["status_code"])
			assert.Equal(t, testTenant, line["tenant_id"])
			assert.Equal(t, "scanner/2.1", line["user_agent"])
			assert.NotEmpty(t, line["request_id"])
			if tt.reception {
				assert.Equal(t, testReception, line["reception_id"])
			} else {
				assert.NotContains(t, line, "reception_id")
			}
		})
	}
}
