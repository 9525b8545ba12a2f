package engine

import (
	"context"
	"errors"
	"fmt"

	"chirp/db"
	"chirp/models"
)

// ListAndAcknowledge returns every notification addressed to the user,
// sender hydrated to the redacted public shape, then marks all of them
// read in the same call. Fetching is deliberately destructive to unread
// state; the returned snapshot reflects the read flags as they were
// before the acknowledgement.
func (e *Engine) ListAndAcknowledge(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := e.notifications.FindByRecipient(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notifications: list for %s: %w", userID, err)
	}

	senderSet := make(map[string]struct{})
	for _, n := range notifications {
		senderSet[n.From] = struct{}{}
	}
	senderIDs := make([]string, 0, len(senderSet))
	for id := range senderSet {
		senderIDs = append(senderIDs, id)
	}

	profiles, err := e.users.ProfilesByIDs(ctx, senderIDs)
	if err != nil {
		return nil, fmt.Errorf("notifications: hydrate senders: %w", err)
	}
	for i := range notifications {
		if profile, ok := profiles[notifications[i].From]; ok {
			p := profile
			notifications[i].Sender = &p
		}
	}

	if err := e.notifications.MarkAllRead(ctx, userID); err != nil {
		return nil, fmt.Errorf("notifications: mark read for %s: %w", userID, err)
	}
	return notifications, nil
}

// DeleteAllNotifications removes every notification addressed to the user.
func (e *Engine) DeleteAllNotifications(ctx context.Context, userID string) error {
	if err := e.notifications.DeleteByRecipient(ctx, userID); err != nil {
		return fmt.Errorf("notifications: delete all for %s: %w", userID, err)
	}
	return nil
}

// DeleteNotification removes a single notification, only for its
// recipient.
func (e *Engine) DeleteNotification(ctx context.Context, id, userID string) error {
	notification, err := e.notifications.GetByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("notifications: load %s: %w", id, err)
	}

	if notification.To != userID {
		return ErrForbidden
	}

	if err := e.notifications.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("notifications: delete %s: %w", id, err)
	}
	return nil
}
