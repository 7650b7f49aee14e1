package handler

import (
	"net/http"

	"Community_API/internal/pkg"
	"Community_API/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.MemberService
}

type MemberCreateReq struct {
	Community uint64 `json:"community" binding:"required"`
	User      uint64 `json:"user" binding:"required"`
	Role      uint64 `json:"role" binding:"required"`
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) Add(c *gin.Context) {
	var req MemberCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkg.Fail(c, pkg.BindError(err))
		return
	}

	member, err := h.svc.AddMember(c.Request.Context(), req.Community, req.User, req.Role)
	if err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OK(c, http.StatusCreated, toMemberResp(member))
}

// Remove 按成员记录 id 删除
func (h *MemberHandler) Remove(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		pkg.Fail(c, err)
		return
	}

	if err := h.svc.RemoveMember(c.Request.Context(), id); err != nil {
		pkg.Fail(c, err)
		return
	}
	pkg.OKEmpty(c)
}
