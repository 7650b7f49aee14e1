package service

import (
	"context"
	"log/slog"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"
)

const (
	outboxBatchSize = 200
	outboxInterval  = time.Second
	outboxMaxRetry  = 5
)

type Sender func(ctx context.Context, ob *model.MemberOutbox) error

// OutboxRelayer 定时把 member_outbox 里待投递的事件交给 sender
type OutboxRelayer struct {
	repo      *store.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(repo *store.OutboxRepository, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: outboxBatchSize,
		interval:  outboxInterval,
		maxRetry:  outboxMaxRetry,
		sender:    sender,
	}
}

// Run 阻塞直到 ctx 取消
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

// drainOnce 返回本轮投递成功的条数
func (r *OutboxRelayer) drainOnce(ctx context.Context) int {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		slog.ErrorContext(ctx, "outbox query failed", "error", err)
		return 0
	}

	sent := 0
	for i := range rows {
		ob := &rows[i]
		if err := r.sender(ctx, ob); err != nil {
			slog.WarnContext(ctx, "outbox send failed", "id", ob.ID, "event", ob.EventType, "retry", ob.Retry, "error", err)
			if err := r.repo.MarkRetry(ctx, ob, r.maxRetry); err != nil {
				slog.ErrorContext(ctx, "outbox retry update failed", "id", ob.ID, "error", err)
			}
			continue
		}
		if err := r.repo.MarkSent(ctx, ob.ID); err != nil {
			slog.ErrorContext(ctx, "outbox sent update failed", "id", ob.ID, "error", err)
			continue
		}
		sent++
	}
	return sent
}

// LogSender 没有配置 Kafka 时使用
func LogSender(ctx context.Context, ob *model.MemberOutbox) error {
	slog.InfoContext(ctx, "outbox event",
		"id", ob.ID,
		"event", ob.EventType,
		"community_id", ob.CommunityID,
		"user_id", ob.UserID,
		"payload", ob.Payload,
	)
	return nil
}

// KafkaSender 以社区 id 为 key，同一社区的事件有序
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.MemberOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.CommunityID), []byte(ob.Payload), map[string]string{
			"event_type": ob.EventType,
		})
	}
}
