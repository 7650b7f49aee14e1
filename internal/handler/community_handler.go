package handler

import (
	"net/http"

	"Community_API/internal/middleware"
	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name string `json:"name" binding:"required,min=2,max=128"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.BindError(err))
		return
	}

	community, err := h.svc.CreateCommunity(c.Request.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OK(c, http.StatusCreated, toCommunityResp(community))
}

// List 全部社区，owner 带 id+name
func (h *CommunityHandler) List(c *gin.Context) {
	page, err := h.svc.ListCommunities(c.Request.Context(), pageRequest(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKPage(c, mapPage(page, toCommunityResp), page.Meta)
}

func (h *CommunityHandler) Members(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		pkg.Fail(c, err)
		return
	}

	page, err := h.svc.ListMembers(c.Request.Context(), id, pageRequest(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKPage(c, mapPage(page, toMemberResp), page.Meta)
}

func (h *CommunityHandler) Owned(c *gin.Context) {
	page, err := h.svc.ListOwned(c.Request.Context(), middleware.UserID(c), pageRequest(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKPage(c, mapPage(page, toCommunityResp), page.Meta)
}

// Joined 返回的是社区，不是成员记录
func (h *CommunityHandler) Joined(c *gin.Context) {
	page, err := h.svc.ListJoined(c.Request.Context(), middleware.UserID(c), pageRequest(c))
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKPage(c, mapPage(page, func(m *model.CommunityMember) any {
		if m.Community == nil {
			// 社区已不存在（弱引用）
			return Ref{ID: m.CommunityID}
		}
		return toCommunityResp(m.Community)
	}), page.Meta)
}
