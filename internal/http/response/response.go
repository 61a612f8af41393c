package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solodko/solodko-api/internal/constants"
)

// Business status codes carried in the response envelope.
const (
	CodeOK           = 0
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeTooMany      = 429
	CodeInternal     = 500
)

// Response is the uniform API envelope.
type Response struct {
	Code      int         `json:"code"`
	Msg       string      `json:"msg"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// PageData wraps paginated list payloads.
type PageData struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func write(c *gin.Context, httpStatus, code int, msg string, data interface{}) {
	c.JSON(httpStatus, Response{
		Code:      code,
		Msg:       msg,
		Data:      data,
		RequestID: c.GetString(constants.ContextKeyRequestID),
	})
}

// OK writes a success envelope.
func OK(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, CodeOK, "ok", data)
}

// Created writes a success envelope with HTTP 201.
func Created(c *gin.Context, data interface{}) {
	write(c, http.StatusCreated, CodeOK, "ok", data)
}

// BadRequest writes a validation failure.
func BadRequest(c *gin.Context, msg string) {
	write(c, http.StatusBadRequest, CodeBadRequest, msg, nil)
}

// Unauthorized writes an authentication failure.
func Unauthorized(c *gin.Context, msg string) {
	write(c, http.StatusUnauthorized, CodeUnauthorized, msg, nil)
}

// Forbidden writes an authorization failure.
func Forbidden(c *gin.Context, msg string) {
	write(c, http.StatusForbidden, CodeForbidden, msg, nil)
}

// NotFound writes a missing-resource failure.
func NotFound(c *gin.Context, msg string) {
	write(c, http.StatusNotFound, CodeNotFound, msg, nil)
}

// TooManyRequests writes a rate-limit rejection.
func TooManyRequests(c *gin.Context, msg string) {
	write(c, http.StatusTooManyRequests, CodeTooMany, msg, nil)
}

// Internal writes a server failure without leaking details.
func Internal(c *gin.Context) {
	write(c, http.StatusInternalServerError, CodeInternal, "internal error", nil)
}
