package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chirp/db"
	"chirp/models"
)

// Follow adds the target to the actor's following set and the actor to
// the target's followers set, and notifies the target. Both sides use
// atomic set operations, so repeated follows are no-ops.
func (e *Engine) Follow(ctx context.Context, actorID, targetID string) error {
	if _, err := e.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("follow: load target %s: %w", targetID, err)
	}

	if err := e.users.Follow(ctx, actorID, targetID); err != nil {
		return fmt.Errorf("follow: update relationship: %w", err)
	}

	notification := &models.Notification{
		From:      actorID,
		To:        targetID,
		Type:      models.NotificationFollow,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := e.notifications.Insert(ctx, notification); err != nil {
		return fmt.Errorf("follow: insert notification: %w", err)
	}
	return nil
}

// Unfollow reverses Follow. No notification is created or retracted.
func (e *Engine) Unfollow(ctx context.Context, actorID, targetID string) error {
	if _, err := e.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("unfollow: load target %s: %w", targetID, err)
	}

	if err := e.users.Unfollow(ctx, actorID, targetID); err != nil {
		return fmt.Errorf("unfollow: update relationship: %w", err)
	}
	return nil
}
