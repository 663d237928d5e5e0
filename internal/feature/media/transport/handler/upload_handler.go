// Package handler はmediaフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/api"
	"estate_backend/internal/feature/auth/transport/middleware"
	"estate_backend/internal/feature/media/domain/entity"
	"estate_backend/internal/feature/media/usecase"
)

// FormField はアップロードファイルを受け取るマルチパートのフィールド名です。
const FormField = "media"

// MediaUsecase はメディアアップロードのユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MediaUsecase interface {
	UploadAll(ctx context.Context, files []entity.MediaFile) (*entity.UploadResult, error)
}

// UploadHandler はメディアアップロードのHTTPリクエストを処理します。
type UploadHandler struct {
	uc MediaUsecase
}

// NewUploadHandler はUploadHandlerの新しいインスタンスを生成します。
func NewUploadHandler(uc MediaUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func toMediaFile(fh *multipart.FileHeader) entity.MediaFile {
	return entity.MediaFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// Upload は画像・動画をアップロードして公開URLを返します。
//
// エンドポイント: POST /api/upload
// Content-Type: multipart/form-data
// フィールド: media（複数可、1ファイル最大25MiB）
func (h *UploadHandler) Upload(c *gin.Context) {
	if middleware.IdentityFrom(c) == nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File[FormField]) == 0 {
		slog.Warn("no media in upload request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No files provided"})
		return
	}

	headers := form.File[FormField]
	files := make([]entity.MediaFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, toMediaFile(fh))
	}

	res, err := h.uc.UploadAll(c.Request.Context(), files)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFiles) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No files provided"})
			return
		}
		slog.Error("file upload error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to upload files"})
		return
	}

	resp := api.UploadResponse{FileURLs: res.URLs}
	for _, f := range res.Failures {
		resp.Errors = append(resp.Errors, api.UploadError{File: f.File, Error: f.Err.Error()})
	}

	switch {
	case res.AllRejected():
		c.JSON(http.StatusBadRequest, api.UploadErrorResponse{Error: "No valid files provided", Errors: resp.Errors})
	case len(res.URLs) == 0:
		slog.Error("file upload error", "files", len(files))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to upload files"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}
