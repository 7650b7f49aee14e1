package handler

import (
	"strconv"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pagination"
	"Community_API/internal/pkg"

	"github.com/gin-gonic/gin"
)

// Ref 关联对象只返回 id 和 name
type Ref struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type UserResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RoleResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Scopes    []string  `json:"scopes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommunityResp struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     any       `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MemberResp struct {
	ID        uint64    `json:"id"`
	Community uint64    `json:"community"`
	User      any       `json:"user"`
	Role      any       `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResp(u *model.User) UserResp {
	return UserResp{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toRoleResp(r *model.Role) RoleResp {
	scopes := r.Scopes
	if scopes == nil {
		scopes = []string{}
	}
	return RoleResp{ID: r.ID, Name: r.Name, Scopes: scopes, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

// toCommunityResp owner 未预加载时只返回 id
func toCommunityResp(c *model.Community) CommunityResp {
	var owner any = c.OwnerID
	if c.Owner != nil {
		owner = Ref{ID: c.Owner.ID, Name: c.Owner.Name}
	}
	return CommunityResp{ID: c.ID, Name: c.Name, Slug: c.Slug, Owner: owner, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toMemberResp(m *model.CommunityMember) MemberResp {
	var user, role any = m.UserID, m.RoleID
	if m.User != nil {
		user = Ref{ID: m.User.ID, Name: m.User.Name}
	}
	if m.Role != nil {
		role = Ref{ID: m.Role.ID, Name: m.Role.Name}
	}
	return MemberResp{ID: m.ID, Community: m.CommunityID, User: user, Role: role, CreatedAt: m.CreatedAt}
}

// mapPage 把分页结果逐条转换成响应结构
func mapPage[T, R any](p *pagination.Page[T], fn func(*T) R) []R {
	out := make([]R, 0, len(p.Data))
	for i := range p.Data {
		out = append(out, fn(&p.Data[i]))
	}
	return out
}

func pageRequest(c *gin.Context) pagination.Request {
	return pagination.ParseRequest(c.Query("page"), c.Query("perPage"))
}

func idParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, pkg.ErrInvalidInput(name, "Invalid id.")
	}
	return id, nil
}
