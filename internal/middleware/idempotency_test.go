package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idempotentSaveRouter counts save calls and answers with the configured status.
type idempotentSaveRouter struct {
	*gin.Engine
	calls  int
	status int
}

func newIdempotentSaveRouter(t *testing.T) *idempotentSaveRouter {
	t.Helper()
	cfg := IdempotencyConfig{
		Cache:   newIdempotencyCache(time.Minute, 10),
		TTL:     time.Minute,
		Enabled: true,
	}
	t.Cleanup(cfg.Cache.Stop)

	r := &idempotentSaveRouter{Engine: gin.New(), status: http.StatusOK}
	r.Use(func(c *gin.Context) {
		c.Set(string(TenantIDKey), c.GetHeader(TenantHeader))
		c.Next()
	})
	r.Use(Idempotency(cfg))
	save := func(c *gin.Context) {
		r.calls++
		if r.status != http.StatusOK {
			c.JSON(r.status, dto.NewError(dto.ErrCodeUnavailable, dto.Message(dto.MsgKeyUnavailable)))
			return
		}
		c.JSON(http.StatusOK, gin.H{"tenant": GetTenantID(c), "save": r.calls})
	}
	r.POST(partitionPath, save)
	r.GET(partitionPath, save)
	return r
}

func (r *idempotentSaveRouter) send(method, tenant, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/receptions/"+testReception+"/partition", strings.NewReader(body))
	req.Header.Set(TenantHeader, tenant)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSave(t *testing.T) {
	router := newIdempotentSaveRouter(t)

	first := router.send(http.MethodPost, testTenant, "save-1", `{"crates_per_pallet":42}`)
	replay := router.send(http.MethodPost, testTenant, "save-1", `{"crates_per_pallet":42}`)

	assert.Equal(t, 1, router.calls)
	assert.Equal(t, http.StatusOK, replay.Code)
	assert.Empty(t, first.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "true", replay.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), replay.Body.String())
}

func TestIdempotency(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		secondTenant  string
		key           string
		firstBody     string
		secondBody    string
		status        int
		expectedCalls int
		expectedCode  int
	}{
		{
			name:          "another tenant with the same key saves again",
			method:        http.MethodPost,
			secondTenant:  "coldstore-porto",
			key:           "save-1",
			expectedCalls: 2,
			expectedCode:  http.StatusOK,
		},
		{
			name:          "requests without a key always run",
			method:        http.MethodPost,
			expectedCalls: 2,
			expectedCode:  http.StatusOK,
		},
		{
			name:          "GET is never replayed",
			method:        http.MethodGet,
			key:           "view-1",
			expectedCalls: 2,
			expectedCode:  http.StatusOK,
		},
		{
			name:          "failed save stays retryable",
			method:        http.MethodPost,
			key:           "save-1",
			status:        http.StatusServiceUnavailable,
			expectedCalls: 2,
			expectedCode:  http.StatusServiceUnavailable,
		},
		{
			name:          "key reused with a different body is a conflict",
			method:        http.MethodPost,
			key:           "save-1",
			firstBody:     `{"crates_per_pallet":42}`,
			secondBody:    `{"crates_per_pallet":50}`,
			expectedCalls: 1,
			expectedCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newIdempotentSaveRouter(t)
			if tt.status != 0 {
				router.status = tt.status
			}
			secondTenant := testTenant
			if tt.secondTenant != "" {
				secondTenant = tt.secondTenant
			}

			router.send(tt.method, testTenant, tt.key, tt.firstBody)
			w := router.send(tt.method, secondTenant, tt.key, tt.secondBody)

			assert.Equal(t, tt.expectedCalls, router.calls)
			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
		})
	}
}

func TestIdempotency_ConflictEnvelope(t *testing.T) {
	buf := captureLogs(t)
	router := newIdempotentSaveRouter(t)

	router.send(http.MethodPost, testTenant, "save-1", `{"crates_per_pallet":42}`)
	w := router.send(http.MethodPost, testTenant, "save-1", `{"crates_per_pallet":50}`)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeConflict, resp.Error)
	assert.Equal(t, dto.Message(dto.MsgKeyIdempotencyMismatch), resp.Message)

	line := findLog(t, buf, "Idempotency key reused for a different request")
	assert.Equal(t, testTenant, line["tenant_id"])
	assert.Equal(t, "save-1", line["idempotency_key"])
}

func TestIdempotency_Disabled(t *testing.T) {
	calls := 0
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Enabled: false}))
	router.POST(partitionPath, func(c *gin.Context) {
		calls++
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/receptions/"+testReception+"/partition", nil)
		req.Header.Set(IdempotencyKeyHeader, "save-1")
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 2, calls)
}

func TestRequestFingerprint(t *testing.T) {
	fingerprint := func(method, path, body string) string {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		fp, err := requestFingerprint(req)
		require.NoError(t, err)
		return fp
	}

	base := fingerprint(http.MethodPost, "/api/receptions/a/partition", `{"n":1}`)
	assert.Equal(t, base, fingerprint(http.MethodPost, "/api/receptions/a/partition", `{"n":1}`))
	assert.NotEqual(t, base, fingerprint(http.MethodPost, "/api/receptions/b/partition", `{"n":1}`))
	assert.NotEqual(t, base, fingerprint(http.MethodPut, "/api/receptions/a/partition", `{"n":1}`))
	assert.NotEqual(t, base, fingerprint(http.MethodPost, "/api/receptions/a/partition", `{"n":2}`))
}
