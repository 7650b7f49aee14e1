package pkg

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Content struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

type SuccessBody struct {
	Status  bool     `json:"status"`
	Content *Content `json:"content,omitempty"`
	Meta    any      `json:"meta,omitempty"`
}

type FailureBody struct {
	Status bool         `json:"status"`
	Errors []FieldError `json:"errors"`
}

// OK 成功返回 {status:true, content:{data}}
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, SuccessBody{Status: true, Content: &Content{Data: data}})
}

// OKPage 分页列表返回，meta 放在 content 里
func OKPage(c *gin.Context, data, meta any) {
	c.JSON(http.StatusOK, SuccessBody{Status: true, Content: &Content{Data: data, Meta: meta}})
}

// OKWithToken signup/signin 额外带上 access_token
func OKWithToken(c *gin.Context, status int, data any, token string) {
	c.JSON(status, SuccessBody{
		Status:  true,
		Content: &Content{Data: data},
		Meta:    gin.H{"access_token": token},
	})
}

// OKEmpty 只返回 {status:true}
func OKEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Status: true})
}

// Fail 写失败响应；非 AppError 记日志后统一返回 SERVER_ERROR
func Fail(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.Status, FailureBody{Errors: appErr.Errors})
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(RequestIDKey),
		"error", err,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, FailureBody{
		Errors: []FieldError{{Message: "Something went wrong.", Code: CodeServerError}},
	})
}

// RequestIDKey gin 上下文里 request id 的 key
const RequestIDKey = "request_id"
