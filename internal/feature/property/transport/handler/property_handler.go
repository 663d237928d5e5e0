// Package handler はpropertyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"estate_backend/internal/api"
	"estate_backend/internal/feature/auth/transport/middleware"
	"estate_backend/internal/feature/property/domain/entity"
	"estate_backend/internal/feature/property/transport/http/dto"
	"estate_backend/internal/feature/property/usecase"
	"estate_backend/internal/shared/identity"
)

// PropertyUsecase は物件操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PropertyUsecase interface {
	Create(ctx context.Context, caller *identity.Identity, in usecase.PropertyInput) (*entity.Property, error)
	Get(ctx context.Context, id uint) (*entity.Property, error)
	List(ctx context.Context, q usecase.ListQuery) (*usecase.PropertyPage, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, caller *identity.Identity, id uint, in usecase.PropertyInput) (*entity.Property, error)
	Delete(ctx context.Context, caller *identity.Identity, id uint) error
}

// PropertyHandler は物件のHTTPリクエストを処理します。
type PropertyHandler struct {
	uc PropertyUsecase
}

// NewPropertyHandler はPropertyHandlerの新しいインスタンスを生成します。
func NewPropertyHandler(uc PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// bindID は :id パスパラメータを uint として取り出します。
func bindID(c *gin.Context) (uint, bool) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid property id"})
		return 0, false
	}
	return id, true
}

func toInput(req dto.PropertyReq) usecase.PropertyInput {
	return usecase.PropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Images:      req.Images,
	}
}

// writeError はユースケースのエラーをステータスコードに変換します。内部エラーの詳細は返しません。
func writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, usecase.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "property not found"})
	default:
		slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msg})
	}
}

// List は GET /api/properties を処理します。?mine=true で呼び出し元の物件に絞り込みます。
func (h *PropertyHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	query := usecase.ListQuery{Page: q.Page, Limit: q.Limit}
	if q.Mine {
		caller := middleware.IdentityFrom(c)
		if caller == nil {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		query.OwnerID = caller.ID
	}

	page, err := h.uc.List(c.Request.Context(), query)
	if err != nil {
		writeError(c, err, "failed to list properties")
		return
	}

	items := make([]api.PropertyResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, dto.ToPropertyResponse(&page.Items[i]))
	}
	c.JSON(http.StatusOK, api.PropertyListResponse{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	})
}

// Get は GET /api/properties/:id を処理します。
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	p, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to load property")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponse(p))
}

// Create は POST /api/properties を処理します。所有者はセッションから決定します。
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.PropertyReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("property validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	p, err := h.uc.Create(c.Request.Context(), middleware.IdentityFrom(c), toInput(req))
	if err != nil {
		writeError(c, err, "failed to create property")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPropertyResponse(p))
}

// Update は PUT /api/properties/:id を処理します。所有者以外は403です。
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req dto.PropertyReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("property validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ValidationError(err))
		return
	}

	p, err := h.uc.Update(c.Request.Context(), middleware.IdentityFrom(c), id, toInput(req))
	if err != nil {
		writeError(c, err, "failed to update property")
		return
	}
	c.JSON(http.StatusOK, dto.ToPropertyResponse(p))
}

// Delete は DELETE /api/properties/:id を処理します。存在しないIDも成功扱いです。
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), middleware.IdentityFrom(c), id); err != nil {
		writeError(c, err, "failed to delete property")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "property deleted"})
}

// Overview は GET /dashboard を処理し、ユーザー名と物件総数を返します。
func (h *PropertyHandler) Overview(c *gin.Context) {
	caller := middleware.IdentityFrom(c)
	total, err := h.uc.Count(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to count properties")
		return
	}

	name := "there"
	if caller != nil && caller.Name != "" {
		name = caller.Name
	}
	c.JSON(http.StatusOK, api.DashboardResponse{
		Welcome:         "Welcome back, " + name,
		TotalProperties: total,
	})
}
