package service

import (
	"context"
	"errors"
	"fmt"

	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
)

// AccessService decides who may add or remove members.
type AccessService struct {
	members *store.CommunityMemberRepository
}

func NewAccessService(members *store.CommunityMemberRepository) *AccessService {
	return &AccessService{members: members}
}

// CanManageMembers returns nil when the caller's earliest membership carries
// an admin or moderator role. The check is not scoped to a community.
// A caller without any membership gets NOT_ALLOWED_ACCESS.
func (s *AccessService) CanManageMembers(ctx context.Context, userID uint64) error {
	m, err := s.members.FirstByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return pkg.ErrNotAllowed()
	}
	if err != nil {
		return fmt.Errorf("load membership: %w", err)
	}
	// 角色可能已被删除（弱引用）
	if m.Role == nil || !m.Role.CanManageMembers() {
		return pkg.ErrNotAllowed()
	}
	return nil
}
