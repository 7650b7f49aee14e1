package model

import "time"

type Community struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null"`
	Slug      string `gorm:"uniqueIndex;size:160;not null"`
	OwnerID   uint64 `gorm:"not null;index"`
	Owner     *User  `gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommunityMember 一条记录 = (社区, 用户, 角色)，同一用户在同一社区可以有多个角色
type CommunityMember struct {
	ID          uint64     `gorm:"primaryKey"`
	CommunityID uint64     `gorm:"not null;index;uniqueIndex:uk_community_user_role"`
	UserID      uint64     `gorm:"not null;index;uniqueIndex:uk_community_user_role"`
	RoleID      uint64     `gorm:"not null;uniqueIndex:uk_community_user_role"`
	Community   *Community `gorm:"foreignKey:CommunityID"`
	User        *User      `gorm:"foreignKey:UserID"`
	Role        *Role      `gorm:"foreignKey:RoleID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
