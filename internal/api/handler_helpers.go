package api

import (
	"errors"
	"net/http"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/response"
	"github.com/endoclin/admin/internal/service"
	"github.com/endoclin/admin/internal/storage"
	"github.com/gin-gonic/gin"
)

// HandleError logs err and writes the error envelope. An empty msg exposes the
// error text itself.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	text := err.Error()
	if msg != "" {
		text = msg + ": " + text
	}
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(text)
	case 401:
		resp = response.Unauthorized(text)
	case 404:
		resp = response.NotFound(text)
	case 409:
		resp = response.Conflict(text)
	case 500:
		resp = response.InternalError(text)
	default:
		resp = response.NewAppError(status, text)
	}
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(200, response.Success(data, meta))
}

// statusFor maps service and storage errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrLoginInProgress):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
