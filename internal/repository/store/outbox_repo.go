package store

import (
	"context"
	"encoding/json"
	"time"

	"Community_API/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{DB: db}
}

// insertOutbox 在业务事务内写事件
func insertOutbox(tx *gorm.DB, event string, communityID, userID uint64, extra map[string]any) error {
	body := map[string]any{
		"event":        event,
		"event_time":   time.Now().UTC().Format(time.RFC3339Nano),
		"community_id": communityID,
		"user_id":      userID,
	}
	for k, v := range extra {
		body[k] = v
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return tx.Create(&model.MemberOutbox{
		EventType:   event,
		CommunityID: communityID,
		UserID:      userID,
		Payload:     string(payload),
		Status:      model.OutboxPending,
	}).Error
}

// ListPending 按 id 顺序取待投递事件
func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.MemberOutbox, error) {
	var list []model.MemberOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = ?", model.OutboxPending).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// MarkSent 投递成功
func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.MemberOutbox{}).Where("id = ?", id).
		Update("status", model.OutboxSent).Error
}

// MarkRetry 投递失败，retry+1；达到 maxRetry 后置为 failed 不再投递
func (r *OutboxRepository) MarkRetry(ctx context.Context, ob *model.MemberOutbox, maxRetry int) error {
	retry := ob.Retry + 1
	status := int8(model.OutboxPending)
	if retry >= maxRetry {
		status = model.OutboxFailed
	}
	return r.DB.WithContext(ctx).Model(&model.MemberOutbox{}).Where("id = ?", ob.ID).
		Updates(map[string]any{"retry": retry, "status": status}).Error
}
