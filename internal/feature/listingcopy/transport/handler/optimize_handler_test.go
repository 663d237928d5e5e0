package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"estate_backend/internal/feature/listingcopy/domain/entity"
	"estate_backend/internal/feature/listingcopy/transport/handler"
	"estate_backend/internal/feature/listingcopy/usecase"
)

// mockListingCopyUsecase はListingCopyUsecaseインターフェースのモック実装です。
type mockListingCopyUsecase struct {
	OptimizeFunc func(ctx context.Context, facts entity.Facts) (string, error)
}

func (m *mockListingCopyUsecase) Optimize(ctx context.Context, facts entity.Facts) (string, error) {
	return m.OptimizeFunc(ctx, facts)
}

func TestOptimizeHandler_Optimize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    string
		mockFunc       func(ctx context.Context, facts entity.Facts) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "success",
			requestBody: `{"title":"Villa","location":"Goa","bedrooms":3,"amenities":["pool"],"price":1500000}`,
			mockFunc: func(ctx context.Context, facts entity.Facts) (string, error) {
				if facts.Bedrooms != 3 || facts.Price != 1500000 || facts.Amenities[0] != "pool" {
					return "", errors.New("facts not mapped")
				}
				return "A calm villa in Goa.", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"optimizedText":"A calm villa in Goa."}`,
		},
		{
			name:        "error: insufficient facts",
			requestBody: `{"title":"Villa"}`,
			mockFunc: func(ctx context.Context, facts entity.Facts) (string, error) {
				return "", usecase.ErrInsufficientFacts
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"At least a description or title + location is required"}`,
		},
		{
			name:           "error: malformed json",
			requestBody:    `{"title":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request"}`,
		},
		{
			name:           "error: negative bedrooms",
			requestBody:    `{"description":"x","bedrooms":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"validation failed","fields":{"bedrooms":"bedrooms must be 0 or more"}}`,
		},
		{
			name:        "error: generator fails",
			requestBody: `{"description":"Two rooms"}`,
			mockFunc: func(ctx context.Context, facts entity.Facts) (string, error) {
				return "", errors.New("quota exceeded")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to optimize description"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewOptimizeHandler(&mockListingCopyUsecase{OptimizeFunc: tt.mockFunc})

			router := gin.New()
			router.POST("/api/ai-optimize", h.Optimize)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/ai-optimize", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
