package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const reconcileChannel = "reconcile-events"

// ReconcileEvent records a partial failure of a multi-document operation.
// The two halves of a like are written with independent atomic set ops, so
// a failure between them leaves the like set and the likedPosts set
// disagreeing. These events are the audit trail operational tooling uses to
// repair that drift out-of-band; nothing in the request path retries.
type ReconcileEvent struct {
	Op         string    `json:"op"`
	PostID     string    `json:"post_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	FailedSide string    `json:"failed_side"`
	Detail     string    `json:"detail"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Emitter publishes reconcile events to Redis.
type Emitter struct {
	conn *redis.Client
}

func NewEmitter(conn *redis.Client) *Emitter {
	return &Emitter{conn: conn}
}

// Emit publishes the event. Publishing is best-effort: a failure here is
// logged and swallowed, it never fails the request that produced it.
func (e *Emitter) Emit(ctx context.Context, event ReconcileEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal reconcile event: %v", err)
		return
	}

	if err := e.conn.Publish(ctx, reconcileChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish reconcile event: %v", err)
	}
}

// StartReconcileWorker subscribes to the reconcile channel and logs every
// event distinctly so drift between like sets can be repaired offline.
func StartReconcileWorker(ctx context.Context, conn *redis.Client) {
	sub := conn.Subscribe(ctx, reconcileChannel)
	ch := sub.Channel()

	log.Println("[ReconcileWorker] Listening for reconcile events...")

	for msg := range ch {
		var event ReconcileEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[ReconcileWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[ReconcileWorker] DRIFT op=%s post=%s user=%s side=%s detail=%s",
			event.Op, event.PostID, event.UserID, event.FailedSide, event.Detail)
	}
}
