package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chirp/db"
	"chirp/models"
)

// AddComment appends a comment to the post and returns the full updated
// post. Comments are append-only; insertion order is preserved.
func (e *Engine) AddComment(ctx context.Context, postID, actorID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInvalidInput
	}

	post, err := e.posts.GetByID(ctx, postID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("comment: load post %s: %w", postID, err)
	}

	comment := models.Comment{
		UserID:    actorID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := e.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, fmt.Errorf("comment: append: %w", err)
	}

	post.Comments = append(post.Comments, comment)
	return post, nil
}
