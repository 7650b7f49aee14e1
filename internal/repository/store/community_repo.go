package store

import (
	"context"

	"Community_API/internal/model"
	"Community_API/internal/pagination"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{DB: db}
}

// Create 建社区，同一事务里把 owner 以 ownerRoleID 加为成员并写 outbox
func (r *CommunityRepository) Create(ctx context.Context, c *model.Community, ownerRoleID uint64) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner").Create(c).Error; err != nil {
			return err
		}

		member := &model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.OwnerID,
			RoleID:      ownerRoleID,
		}
		if err := tx.Omit("Community", "User", "Role").Create(member).Error; err != nil {
			return err
		}

		return insertOutbox(tx, model.EventCommunityCreated, c.ID, c.OwnerID, map[string]any{
			"slug":      c.Slug,
			"member_id": member.ID,
			"role_id":   ownerRoleID,
		})
	})
	return translate(err)
}

func (r *CommunityRepository) FindByID(ctx context.Context, id uint64) (*model.Community, error) {
	var community model.Community
	if err := r.DB.WithContext(ctx).First(&community, id).Error; err != nil {
		return nil, translate(err)
	}
	return &community, nil
}

func (r *CommunityRepository) FindBySlug(ctx context.Context, slug string) (*model.Community, error) {
	var community model.Community
	if err := r.DB.WithContext(ctx).Where("slug = ?", slug).First(&community).Error; err != nil {
		return nil, translate(err)
	}
	return &community, nil
}

func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("Owner", selectIDName)
}

// All 全部社区
func (r *CommunityRepository) All() pagination.Source[model.Community] {
	return newSource[model.Community](r.DB, nil, withOwner)
}

// OwnedBy 某用户创建的社区
func (r *CommunityRepository) OwnedBy(ownerID uint64) pagination.Source[model.Community] {
	return newSource[model.Community](r.DB, func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}, withOwner)
}
