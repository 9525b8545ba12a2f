package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"chirp/blob"
	"chirp/db"
	"chirp/models"
	"chirp/utils"
)

// CreatePost stores a new post for the acting user. At least one of text
// and img must be non-empty; img is handed to the blob store, which
// returns the servable URL persisted on the post.
func (e *Engine) CreatePost(ctx context.Context, actorID, text, img string) (*models.Post, error) {
	user, err := e.users.GetByID(ctx, actorID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("create post: load user %s: %w", actorID, err)
	}

	if text == "" && img == "" {
		return nil, ErrInvalidInput
	}

	imgURL := ""
	if img != "" {
		imgURL, err = e.blobs.Upload(ctx, img)
		if err != nil {
			return nil, fmt.Errorf("create post: upload image: %w", err)
		}
	}

	post := &models.Post{
		PostID:    utils.GenerateID(),
		UserID:    user.UserID,
		Text:      text,
		Img:       imgURL,
		Likes:     []string{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}
	if err := e.posts.Insert(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: insert: %w", err)
	}
	return post, nil
}

// DeletePost removes a post owned by the acting user. If the post carries
// an image, the backing blob is deleted first; that cleanup is
// best-effort and a failure there never fails the deletion itself.
func (e *Engine) DeletePost(ctx context.Context, postID, actorID string) error {
	post, err := e.posts.GetByID(ctx, postID)
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete post: load %s: %w", postID, err)
	}

	if post.UserID != actorID {
		return ErrForbidden
	}

	if post.Img != "" {
		if err := e.blobs.Delete(ctx, blob.AssetID(post.Img)); err != nil {
			log.Printf("[delete post] asset cleanup failed for post=%s asset=%s: %v",
				postID, blob.AssetID(post.Img), err)
		}
	}

	if err := e.posts.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: remove document: %w", err)
	}
	return nil
}
