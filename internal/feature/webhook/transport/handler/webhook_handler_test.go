package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/webhooks", Receive)
	r.GET("/api/webhooks", Status)
	return r
}

func TestReceive(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"object payload", `{"event":"payment.succeeded","id":42}`, http.StatusOK, `{"message":"Webhook received successfully"}`},
		{"array payload", `[1,2,3]`, http.StatusOK, `{"message":"Webhook received successfully"}`},
		{"malformed json", `{"event":`, http.StatusInternalServerError, `{"error":"Failed to process webhook"}`},
		{"empty body", ``, http.StatusInternalServerError, `{"error":"Failed to process webhook"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/webhooks", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			setupRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestStatus(t *testing.T) {
	w := httptest.NewRecorder()
	setupRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/webhooks", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Webhook endpoint is active"}`, w.Body.String())
}
