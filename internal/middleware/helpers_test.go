package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

const (
	testTenant    = "coldstore-lisbon"
	testReception = "66f1c0d2a7b4e8a1c9d3e5f7"
	partitionPath = "/api/receptions/:id/partition"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// captureLogs routes the global logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	previous := log.Logger
	log.Logger = zerolog.New(buf).Level(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = previous
	})
	return buf
}

// logLines decodes every JSON line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

// findLog returns the first line with the given message.
func findLog(t *testing.T, buf *bytes.Buffer, message string) map[string]interface{} {
	t.Helper()
	for _, line := range logLines(t, buf) {
		if line["message"] == message {
			return line
		}
	}
	t.Fatalf("no log line %q in %s", message, buf.String())
	return nil
}

// withTenant stands in for the Tenant middleware.
func withTenant(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tenantID != "" {
			c.Set(string(TenantIDKey), tenantID)
		}
		c.Next()
	}
}
