package model

import "time"

const (
	EventCommunityCreated = "community.created"
	EventMemberAdded      = "member.added"
	EventMemberRemoved    = "member.removed"
)

const (
	OutboxPending = 0
	OutboxSent    = 1
	OutboxFailed  = 2
)

// MemberOutbox 成员变更事件表，和业务写入同一个事务
type MemberOutbox struct {
	ID          uint64 `gorm:"primaryKey"`
	EventType   string `gorm:"size:32;not null"`
	CommunityID uint64 `gorm:"not null;index"`
	UserID      uint64 `gorm:"not null"`
	Payload     string `gorm:"type:text;not null"`
	Status      int8   `gorm:"not null;default:0;index;comment:'0=pending,1=sent,2=failed'"`
	Retry       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MemberOutbox) TableName() string { return "member_outbox" }
