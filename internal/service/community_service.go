package service

import (
	"context"
	"errors"
	"fmt"

	"Community_API/internal/model"
	"Community_API/internal/pagination"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
)

type CommunityService struct {
	repo       *store.CommunityRepository
	memberRepo *store.CommunityMemberRepository
	roleRepo   *store.RoleRepository
}

func NewCommunityService(repo *store.CommunityRepository, memberRepo *store.CommunityMemberRepository, roleRepo *store.RoleRepository) *CommunityService {
	return &CommunityService{repo: repo, memberRepo: memberRepo, roleRepo: roleRepo}
}

// CreateCommunity 建社区，创建者自动成为 Community Admin
func (s *CommunityService) CreateCommunity(ctx context.Context, ownerID uint64, name string) (*model.Community, error) {
	name, err := pkg.TrimName(name)
	if err != nil {
		return nil, err
	}
	slug := pkg.Slugify(name)
	if slug == "" {
		return nil, pkg.ErrInvalidInput("name", "Name should contain letters or digits.")
	}

	_, err = s.repo.FindBySlug(ctx, slug)
	if err == nil {
		return nil, communityExists()
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	admin, err := s.roleRepo.FindByName(ctx, model.RoleCommunityAdmin)
	if err != nil {
		return nil, fmt.Errorf("load %q role: %w", model.RoleCommunityAdmin, err)
	}

	community := &model.Community{
		Name:    name,
		Slug:    slug,
		OwnerID: ownerID,
	}
	if err := s.repo.Create(ctx, community, admin.ID); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, communityExists()
		}
		return nil, err
	}
	return community, nil
}

func communityExists() *pkg.AppError {
	return pkg.ErrResourceExists("name", "Community with this name already exists.")
}

func (s *CommunityService) ListCommunities(ctx context.Context, req pagination.Request) (*pagination.Page[model.Community], error) {
	return pagination.Paginate(ctx, s.repo.All(), req)
}

// ListMembers 社区不存在时返回空列表
func (s *CommunityService) ListMembers(ctx context.Context, communityID uint64, req pagination.Request) (*pagination.Page[model.CommunityMember], error) {
	return pagination.Paginate(ctx, s.memberRepo.InCommunity(communityID), req)
}

func (s *CommunityService) ListOwned(ctx context.Context, userID uint64, req pagination.Request) (*pagination.Page[model.Community], error) {
	return pagination.Paginate(ctx, s.repo.OwnedBy(userID), req)
}

// ListJoined 按成员记录分页，每条记录带上社区
func (s *CommunityService) ListJoined(ctx context.Context, userID uint64, req pagination.Request) (*pagination.Page[model.CommunityMember], error) {
	return pagination.Paginate(ctx, s.memberRepo.JoinedBy(userID), req)
}
