package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pallet-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name            string
		handler         gin.HandlerFunc
		expectedStatus  int
		expectedCode    string
		expectedMessage string
		expectedLevel   string
	}{
		{
			name: "bind error is a bad request",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("crates_per_pallet: invalid integer")).SetType(gin.ErrorTypeBind)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: dto.Message(dto.MsgKeyInvalidRequestBody),
			expectedLevel:   "warn",
		},
		{
			name: "unclassified error is internal",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("label renderer failed"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    dto.ErrCodeInternal,
			expectedMessage: "Internal server error",
			expectedLevel:   "error",
		},
		{
			name: "last error decides the status",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("label renderer failed"))
				_ = c.Error(errors.New("bad json")).SetType(gin.ErrorTypeBind)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeInvalidRequest,
			expectedMessage: dto.Message(dto.MsgKeyInvalidRequestBody),
			expectedLevel:   "warn",
		},
		{
			name: "handler answer is kept",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusNotFound, dto.NewError(dto.ErrCodeNotFound, dto.Message(dto.MsgKeyPalletNotFound)))
				_ = c.Error(errors.New("pallet not found"))
			},
			expectedStatus:  http.StatusNotFound,
			expectedCode:    dto.ErrCodeNotFound,
			expectedMessage: dto.Message(dto.MsgKeyPalletNotFound),
			expectedLevel:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			router := gin.New()
			router.Use(RequestID(), withTenant(testTenant), ErrorHandler())
			router.POST(partitionPath, tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/receptions/"+testReception+"/partition", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)

			line := findLog(t, buf, "Request error")
			assert.Equal(t, tt.expectedLevel, line["level"])
			assert.Equal(t, testTenant, line["tenant_id"])
			assert.Equal(t, testReception, line["reception_id"])
		})
	}
}

func TestErrorHandler_NoErrors(t *testing.T) {
	buf := captureLogs(t)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET(partitionPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pallets": 2})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/receptions/"+testReception+"/partition", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"pallets":2}`, w.Body.String())
	assert.NotContains(t, buf.String(), "Request error")
}
