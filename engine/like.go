package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chirp/db"
	"chirp/models"
	"chirp/utils"
)

// ToggleLike inverts the acting user's membership in the post's like set
// and returns the updated set.
//
// A like is recorded in two places: Post.likes and User.likedPosts. The
// two sides are written with independent atomic set operations, not a
// cross-document transaction; a failure between them leaves the sets
// disagreeing until reconciliation. $addToSet/$pull keep each side
// idempotent, so concurrent double-toggles converge.
//
// Any user may like any post, including their own. Unliking never
// retracts the notification created by the like.
func (e *Engine) ToggleLike(ctx context.Context, postID, actorID string) ([]string, error) {
	post, err := e.posts.GetByID(ctx, postID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("like: load post %s: %w", postID, err)
	}

	if utils.Contains(post.Likes, actorID) {
		if err := e.posts.RemoveLike(ctx, postID, actorID); err != nil {
			return nil, fmt.Errorf("unlike: post side: %w", err)
		}
		if err := e.users.RemoveLikedPost(ctx, actorID, postID); err != nil {
			e.reportDrift(ctx, "unlike", postID, actorID, "user.likedPosts", err)
			return nil, fmt.Errorf("unlike: user side: %w", err)
		}
		return utils.Without(post.Likes, actorID), nil
	}

	if err := e.posts.AddLike(ctx, postID, actorID); err != nil {
		return nil, fmt.Errorf("like: post side: %w", err)
	}
	if err := e.users.AddLikedPost(ctx, actorID, postID); err != nil {
		e.reportDrift(ctx, "like", postID, actorID, "user.likedPosts", err)
		return nil, fmt.Errorf("like: user side: %w", err)
	}

	notification := &models.Notification{
		From:      actorID,
		To:        post.UserID,
		Type:      models.NotificationLike,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := e.notifications.Insert(ctx, notification); err != nil {
		return nil, fmt.Errorf("like: insert notification: %w", err)
	}

	return append(post.Likes, actorID), nil
}
