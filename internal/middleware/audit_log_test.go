package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/model"
	"github.com/guttosm/pallet-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// expectEntry registers a CreateEntry expectation and returns a channel
// closed once it is met.
func expectEntry(m *mocks.MockLoggingService, match func(*model.AuditEntry) bool) <-chan struct{} {
	done := make(chan struct{})
	m.On("CreateEntry", mock.Anything, mock.MatchedBy(match)).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).
		Once()
	return done
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("audit entry was not written")
	}
}

func TestAuditLog(t *testing.T) {
	tests := []struct {
		name          string
		action        string
		receptionID   string
		message       string
		fields        map[string]interface{}
		tenant        string
		useNilLogging bool
		match         func(*model.AuditEntry) bool
	}{
		{
			name:        "records tenant and reception",
			action:      "set_override",
			receptionID: "rec-1",
			message:     "Pallet override set",
			fields:      map[string]interface{}{"ordinal": 2, "crates": 30},
			tenant:      "tenant-a",
			match: func(entry *model.AuditEntry) bool {
				return entry.Action == "set_override" &&
					entry.TenantID == "tenant-a" &&
					entry.ReceptionID == "rec-1" &&
					entry.Level == "info" &&
					entry.Method == http.MethodGet &&
					entry.Path == "/test" &&
					entry.RequestID != "" &&
					entry.Fields["ordinal"] == 2
			},
		},
		{
			name:    "without tenant or fields",
			action:  "preview",
			message: "Partition preview",
			match: func(entry *model.AuditEntry) bool {
				return entry.Action == "preview" &&
					entry.TenantID == "" &&
					entry.Fields == nil
			},
		},
		{
			name:          "nil logging service is ignored",
			action:        "save",
			useNilLogging: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockLogging := new(mocks.MockLoggingService)

			var done <-chan struct{}
			if tt.match != nil {
				done = expectEntry(mockLogging, tt.match)
			}

			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				if tt.tenant != "" {
					c.Set(string(TenantIDKey), tt.tenant)
				}
				if tt.useNilLogging {
					AuditLog(nil, c, tt.action, tt.receptionID, tt.message, tt.fields)
				} else {
					AuditLog(mockLogging, c, tt.action, tt.receptionID, tt.message, tt.fields)
				}
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			if done != nil {
				waitFor(t, done)
			}
			mockLogging.AssertExpectations(t)
		})
	}
}

func TestAuditLogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		match func(*model.AuditEntry) bool
	}{
		{
			name: "records the error",
			err:  assert.AnError,
			match: func(entry *model.AuditEntry) bool {
				return entry.Action == "save" &&
					entry.Level == "error" &&
					entry.Error == assert.AnError.Error() &&
					entry.TenantID == "tenant-a" &&
					entry.ReceptionID == "rec-1"
			},
		},
		{
			name: "nil error leaves the field empty",
			match: func(entry *model.AuditEntry) bool {
				return entry.Level == "error" && entry.Error == ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			mockLogging := new(mocks.MockLoggingService)
			done := expectEntry(mockLogging, tt.match)

			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.Set(string(TenantIDKey), "tenant-a")
				AuditLogError(mockLogging, c, "save", "rec-1", "Partition save failed", tt.err, nil)
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			waitFor(t, done)
			mockLogging.AssertExpectations(t)
		})
	}
}
