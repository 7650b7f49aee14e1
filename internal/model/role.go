package model

import "time"

// 内置角色名，成员管理只认前两个
const (
	RoleCommunityAdmin     = "Community Admin"
	RoleCommunityModerator = "Community Moderator"
	RoleCommunityMember    = "Community Member"
)

type Role struct {
	ID        uint64   `gorm:"primaryKey"`
	Name      string   `gorm:"uniqueIndex;size:64;not null"`
	Scopes    []string `gorm:"type:text;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanManageMembers reports whether holders of the role may add or remove members.
// The comparison is exact and case-sensitive.
func (r *Role) CanManageMembers() bool {
	return r.Name == RoleCommunityAdmin || r.Name == RoleCommunityModerator
}

// DefaultRoles are ensured at startup.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleCommunityAdmin, Scopes: []string{"member-get", "member-add", "member-remove"}},
		{Name: RoleCommunityModerator, Scopes: []string{"member-get", "member-remove"}},
		{Name: RoleCommunityMember, Scopes: []string{"member-get"}},
	}
}
