// Package handler はlistingcopyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/api"
	"estate_backend/internal/feature/listingcopy/domain/entity"
	"estate_backend/internal/feature/listingcopy/transport/http/dto"
	"estate_backend/internal/feature/listingcopy/usecase"
)

// ListingCopyUsecase は説明文生成のユースケースを定義します。
type ListingCopyUsecase interface {
	Optimize(ctx context.Context, facts entity.Facts) (string, error)
}

// OptimizeHandler は説明文生成のHTTPリクエストを処理します。
type OptimizeHandler struct {
	uc ListingCopyUsecase
}

// NewOptimizeHandler はOptimizeHandlerの新しいインスタンスを生成します。
func NewOptimizeHandler(uc ListingCopyUsecase) *OptimizeHandler {
	return &OptimizeHandler{uc: uc}
}

// Optimize は物件情報から説明文を生成します。
//
// エンドポイント: POST /api/ai-optimize
// Content-Type: application/json
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	var req dto.OptimizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("optimize request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	text, err := h.uc.Optimize(c.Request.Context(), req.ToFacts())
	if err != nil {
		if errors.Is(err, usecase.ErrInsufficientFacts) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "At least a description or title + location is required"})
			return
		}
		slog.Error("ai optimize failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to optimize description"})
		return
	}

	c.JSON(http.StatusOK, api.OptimizeResponse{OptimizedText: text})
}
