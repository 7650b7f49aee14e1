package handler

import (
	"net/http"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	svc *service.RoleService
}

type RoleCreateReq struct {
	Name   string   `json:"name" binding:"required,min=2,max=64"`
	Scopes []string `json:"scopes"`
}

func NewRoleHandler(svc *service.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.BindError(err))
		return
	}

	role, err := h.svc.Create(c.Request.Context(), req.Name, req.Scopes)
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OK(c, http.StatusCreated, toRoleResp(role))
}

func (h *RoleHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKPage(c, mapPage(page, toRoleResp), page.Meta)
}
