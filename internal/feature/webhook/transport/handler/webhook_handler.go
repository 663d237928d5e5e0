// Package handler は外部サービスからのWebhookを受け付けます。
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate_backend/internal/api"
)

// Receive は任意のJSONペイロードを受け取りログに記録します。
//
// エンドポイント: POST /api/webhooks
func Receive(c *gin.Context) {
	var payload any
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Error("webhook error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to process webhook"})
		return
	}

	slog.Info("webhook received", "payload", payload, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Webhook received successfully"})
}

// Status はWebhookエンドポイントの死活を返します。
//
// エンドポイント: GET /api/webhooks
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Webhook endpoint is active"})
}
