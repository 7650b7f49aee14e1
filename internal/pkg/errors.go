package pkg

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误码，和前端约定好的字符串
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeResourceExists     = "RESOURCE_EXISTS"
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotSignedIn        = "NOT_SIGNEDIN"
	CodeNotAllowedAccess   = "NOT_ALLOWED_ACCESS"
	CodeServerError        = "SERVER_ERROR"
)

// FieldError 失败响应 errors 数组里的一项
type FieldError struct {
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// AppError 可以直接返回给客户端的业务错误
type AppError struct {
	Status int
	Errors []FieldError
}

func (e *AppError) Error() string {
	if len(e.Errors) == 0 {
		return http.StatusText(e.Status)
	}
	first := e.Errors[0]
	if first.Param != "" {
		return fmt.Sprintf("%s: %s (%s)", first.Code, first.Message, first.Param)
	}
	return fmt.Sprintf("%s: %s", first.Code, first.Message)
}

// Code 取第一条错误的错误码
func (e *AppError) Code() string {
	if len(e.Errors) == 0 {
		return CodeServerError
	}
	return e.Errors[0].Code
}

func newAppError(status int, code, param, msg string) *AppError {
	return &AppError{Status: status, Errors: []FieldError{{Param: param, Message: msg, Code: code}}}
}

func ErrInvalidInput(param, msg string) *AppError {
	return newAppError(http.StatusBadRequest, CodeInvalidInput, param, msg)
}

func ErrResourceExists(param, msg string) *AppError {
	return newAppError(http.StatusBadRequest, CodeResourceExists, param, msg)
}

func ErrNotFound(param, msg string) *AppError {
	return newAppError(http.StatusNotFound, CodeResourceNotFound, param, msg)
}

func ErrInvalidCredentials() *AppError {
	return newAppError(http.StatusUnauthorized, CodeInvalidCredentials, "password", "The credentials you provided are invalid.")
}

func ErrNotSignedIn() *AppError {
	return newAppError(http.StatusUnauthorized, CodeNotSignedIn, "", "You need to sign in to proceed.")
}

func ErrNotAllowed() *AppError {
	return newAppError(http.StatusUnauthorized, CodeNotAllowedAccess, "", "You are not authorized to perform this action.")
}

// AsAppError 从错误链里取出 *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
