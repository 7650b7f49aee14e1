package service

import (
	"context"
	"errors"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
)

type MemberService struct {
	members     *store.CommunityMemberRepository
	users       *store.UserRepository
	communities *store.CommunityRepository
	roles       *store.RoleRepository
}

func NewMemberService(members *store.CommunityMemberRepository, users *store.UserRepository, communities *store.CommunityRepository, roles *store.RoleRepository) *MemberService {
	return &MemberService{members: members, users: users, communities: communities, roles: roles}
}

// AddMember 三个 id 都必须存在，(community, user, role) 不可重复
func (s *MemberService) AddMember(ctx context.Context, communityID, userID, roleID uint64) (*model.CommunityMember, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, notFound(err, "user", "User not found.")
	}
	if _, err := s.communities.FindByID(ctx, communityID); err != nil {
		return nil, notFound(err, "community", "Community not found.")
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, notFound(err, "role", "Role not found.")
	}

	exists, err := s.members.Exists(ctx, communityID, userID, roleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, memberExists()
	}

	m := &model.CommunityMember{CommunityID: communityID, UserID: userID, RoleID: roleID}
	if err := s.members.Add(ctx, m); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, memberExists()
		}
		return nil, err
	}
	return m, nil
}

func memberExists() *pkg.AppError {
	return pkg.ErrResourceExists("user", "User is already added in the community.")
}

// RemoveMember 按成员记录 id 删除
func (s *MemberService) RemoveMember(ctx context.Context, id uint64) error {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "member", "Member not found.")
	}
	if err := s.members.Remove(ctx, m); err != nil {
		return notFound(err, "member", "Member not found.")
	}
	return nil
}

// notFound 把 store.ErrNotFound 转成 404，其它错误原样返回
func notFound(err error, param, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return pkg.ErrNotFound(param, msg)
	}
	return err
}
