// Package engine implements the interaction rules of the backend: the
// like/unlike toggle, comment append, post lifecycle, feed assembly, and
// the notification lifecycle. It is the only component that touches more
// than one entity type per operation, so the cross-document bookkeeping
// (a like lives in Post.likes and User.likedPosts at once) is enforced
// here and nowhere else.
package engine

import (
	"context"
	"errors"
	"log"

	"chirp/blob"
	"chirp/models"
	"chirp/mq"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// UserStore is the typed accessor the engine needs over user documents.
type UserStore interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	AddLikedPost(ctx context.Context, userID, postID string) error
	RemoveLikedPost(ctx context.Context, userID, postID string) error
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	ProfilesByIDs(ctx context.Context, userIDs []string) (map[string]models.PublicProfile, error)
}

// PostStore is the typed accessor over post documents.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	AppendComment(ctx context.Context, postID string, comment models.Comment) error
	All(ctx context.Context) ([]models.Post, error)
	ByAuthor(ctx context.Context, userID string) ([]models.Post, error)
	ByAuthors(ctx context.Context, userIDs []string) ([]models.Post, error)
	ByIDs(ctx context.Context, postIDs []string) ([]models.Post, error)
}

// NotificationStore is the typed accessor over notification documents.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	FindByRecipient(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	DeleteByRecipient(ctx context.Context, userID string) error
	DeleteByID(ctx context.Context, id string) error
}

// Reporter carries reconcile events for partial multi-document failures.
type Reporter interface {
	Emit(ctx context.Context, event mq.ReconcileEvent)
}

type Engine struct {
	users         UserStore
	posts         PostStore
	notifications NotificationStore
	blobs         blob.Store
	reporter      Reporter
}

func New(users UserStore, posts PostStore, notifications NotificationStore, blobs blob.Store, reporter Reporter) *Engine {
	return &Engine{
		users:         users,
		posts:         posts,
		notifications: notifications,
		blobs:         blobs,
		reporter:      reporter,
	}
}

// reportDrift logs a partial dual-write failure and publishes it for
// out-of-band reconciliation. The request still fails; nothing is rolled
// back or retried here.
func (e *Engine) reportDrift(ctx context.Context, op, postID, userID, failedSide string, cause error) {
	log.Printf("[%s] partial failure: %s not updated for post=%s user=%s: %v",
		op, failedSide, postID, userID, cause)
	if e.reporter != nil {
		e.reporter.Emit(ctx, mq.ReconcileEvent{
			Op:         op,
			PostID:     postID,
			UserID:     userID,
			FailedSide: failedSide,
			Detail:     cause.Error(),
		})
	}
}
