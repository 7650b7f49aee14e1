package store

import (
	"context"

	"Community_API/internal/model"
	"Community_API/internal/pagination"

	"gorm.io/gorm"
)

type CommunityMemberRepository struct {
	DB *gorm.DB
}

func NewCommunityMemberRepository(db *gorm.DB) *CommunityMemberRepository {
	return &CommunityMemberRepository{DB: db}
}

// Add 加成员并写 outbox；(community, user, role) 重复返回 ErrDuplicate
func (r *CommunityMemberRepository) Add(ctx context.Context, m *model.CommunityMember) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Community", "User", "Role").Create(m).Error; err != nil {
			return err
		}
		return insertOutbox(tx, model.EventMemberAdded, m.CommunityID, m.UserID, map[string]any{
			"member_id": m.ID,
			"role_id":   m.RoleID,
		})
	})
	return translate(err)
}

func (r *CommunityMemberRepository) Exists(ctx context.Context, communityID, userID, roleID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ? AND role_id = ?", communityID, userID, roleID).
		Count(&count).Error
	return count > 0, err
}

func (r *CommunityMemberRepository) FindByID(ctx context.Context, id uint64) (*model.CommunityMember, error) {
	var m model.CommunityMember
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// FirstByUser 用户最早的一条成员记录，带上角色
func (r *CommunityMemberRepository) FirstByUser(ctx context.Context, userID uint64) (*model.CommunityMember, error) {
	var m model.CommunityMember
	err := r.DB.WithContext(ctx).
		Preload("Role").
		Where("user_id = ?", userID).
		Order(orderByID).
		First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// Remove 按 id 删除并写 outbox
func (r *CommunityMemberRepository) Remove(ctx context.Context, m *model.CommunityMember) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.CommunityMember{}, m.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return insertOutbox(tx, model.EventMemberRemoved, m.CommunityID, m.UserID, map[string]any{
			"member_id": m.ID,
			"role_id":   m.RoleID,
		})
	})
	return translate(err)
}

// InCommunity 社区成员列表，带 user/role 的 id+name
func (r *CommunityMemberRepository) InCommunity(communityID uint64) pagination.Source[model.CommunityMember] {
	return newSource[model.CommunityMember](r.DB, func(db *gorm.DB) *gorm.DB {
		return db.Where("community_id = ?", communityID)
	}, func(db *gorm.DB) *gorm.DB {
		return db.Preload("User", selectIDName).Preload("Role", selectIDName)
	})
}

// JoinedBy 用户加入的社区（按成员记录分页），社区带 owner
func (r *CommunityMemberRepository) JoinedBy(userID uint64) pagination.Source[model.CommunityMember] {
	return newSource[model.CommunityMember](r.DB, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Community").Preload("Community.Owner", selectIDName)
	})
}
