package handler

import (
	"net/http"

	"Community_API/internal/middleware"
	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc          *service.AuthService
	cookieSecure bool
}

// SignUpReq 注册请求体
type SignUpReq struct {
	Name     string `json:"name" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,password"`
}

// SignInReq 登录只校验格式，密码策略不在这里检查
type SignInReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func NewAuthHandler(svc *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieSecure: cookieSecure}
}

// SignUp 注册接口
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.BindError(err))
		return
	}

	user, token, err := h.svc.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		pkg.Fail(c, err)
		return
	}

	h.setTokenCookie(c, token)
	pkg.OKWithToken(c, http.StatusCreated, toUserResp(user), token)
}

// SignIn 登录接口
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.BindError(err))
		return
	}

	user, token, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Fail(c, err)
		return
	}

	h.setTokenCookie(c, token)
	pkg.OKWithToken(c, http.StatusOK, toUserResp(user), token)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OK(c, http.StatusOK, toUserResp(user))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.svc.SignOut(c.Request.Context(), middleware.Claims(c)); err != nil {
		pkg.Fail(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookieSecure, true)
	pkg.OKEmpty(c)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, int(h.svc.TokenTTL().Seconds()), "/", "", h.cookieSecure, true)
}
