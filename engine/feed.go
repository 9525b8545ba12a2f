package engine

import (
	"context"
	"errors"
	"fmt"

	"chirp/db"
	"chirp/models"
)

// GlobalFeed returns every post, newest first, with author and
// comment-author profiles attached in their redacted public shape.
func (e *Engine) GlobalFeed(ctx context.Context) ([]models.Post, error) {
	posts, err := e.posts.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("global feed: %w", err)
	}
	return e.hydrate(ctx, posts)
}

// FollowingFeed returns posts authored by anyone the requesting user
// follows. An empty following set yields an empty feed, not an error.
func (e *Engine) FollowingFeed(ctx context.Context, userID string) ([]models.Post, error) {
	user, err := e.users.GetByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("following feed: load user %s: %w", userID, err)
	}

	posts, err := e.posts.ByAuthors(ctx, user.Following)
	if err != nil {
		return nil, fmt.Errorf("following feed: %w", err)
	}
	return e.hydrate(ctx, posts)
}

// UserFeed returns posts authored by the named user.
func (e *Engine) UserFeed(ctx context.Context, username string) ([]models.Post, error) {
	user, err := e.users.GetByUsername(ctx, username)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user feed: load user %s: %w", username, err)
	}

	posts, err := e.posts.ByAuthor(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("user feed: %w", err)
	}
	return e.hydrate(ctx, posts)
}

// LikedFeed returns the posts in the target user's likedPosts set.
func (e *Engine) LikedFeed(ctx context.Context, userID string) ([]models.Post, error) {
	user, err := e.users.GetByID(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("liked feed: load user %s: %w", userID, err)
	}

	posts, err := e.posts.ByIDs(ctx, user.LikedPosts)
	if err != nil {
		return nil, fmt.Errorf("liked feed: %w", err)
	}
	return e.hydrate(ctx, posts)
}

// hydrate attaches redacted author profiles to posts and their comments.
// One batched profile fetch covers both.
func (e *Engine) hydrate(ctx context.Context, posts []models.Post) ([]models.Post, error) {
	if len(posts) == 0 {
		return []models.Post{}, nil
	}

	idSet := make(map[string]struct{})
	for _, p := range posts {
		idSet[p.UserID] = struct{}{}
		for _, c := range p.Comments {
			idSet[c.UserID] = struct{}{}
		}
	}
	userIDs := make([]string, 0, len(idSet))
	for id := range idSet {
		userIDs = append(userIDs, id)
	}

	profiles, err := e.users.ProfilesByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("hydrate feed: %w", err)
	}

	for i := range posts {
		if profile, ok := profiles[posts[i].UserID]; ok {
			p := profile
			posts[i].Author = &p
		}
		for j := range posts[i].Comments {
			if profile, ok := profiles[posts[i].Comments[j].UserID]; ok {
				p := profile
				posts[i].Comments[j].Author = &p
			}
		}
	}
	return posts, nil
}
