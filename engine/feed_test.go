package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"chirp/models"
)

func TestGlobalFeedNewestFirstWithProfiles(t *testing.T) {
	f := newFixture()
	f.users.add("u1", "alice")
	f.users.add("u2", "bob")
	base := time.Now()
	f.addPost("p1", "u1", "oldest", base.Add(-2*time.Hour))
	f.addPost("p2", "u2", "middle", base.Add(-time.Hour))
	p3 := f.addPost("p3", "u1", "newest", base)
	p3.Comments = []models.Comment{{UserID: "u2", Text: "nice", CreatedAt: base}}

	feed, err := f.engine.GlobalFeed(context.Background())
	if err != nil {
		t.Fatalf("GlobalFeed: %v", err)
	}

	if len(feed) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(feed))
	}
	for i, want := range []string{"p3", "p2", "p1"} {
		if feed[i].PostID != want {
			t.Errorf("feed[%d] = %s, want %s", i, feed[i].PostID, want)
		}
	}

	if feed[0].Author == nil || feed[0].Author.Username != "alice" {
		t.Errorf("post author not hydrated: %+v", feed[0].Author)
	}
	if len(feed[0].Comments) != 1 || feed[0].Comments[0].Author == nil ||
		feed[0].Comments[0].Author.Username != "bob" {
		t.Errorf("comment author not hydrated: %+v", feed[0].Comments)
	}
}

func TestGlobalFeedEmptyStore(t *testing.T) {
	f := newFixture()

	feed, err := f.engine.GlobalFeed(context.Background())
	if err != nil {
		t.Fatalf("GlobalFeed: %v", err)
	}
	if feed == nil || len(feed) != 0 {
		t.Errorf("expected empty non-nil feed, got %v", feed)
	}
}

func TestFollowingFeedEmptyFollowing(t *testing.T) {
	f := newFixture()
	f.users.add("u1", "alice")
	f.users.add("u2", "bob")
	f.addPost("p1", "u2", "hello", time.Now())

	feed, err := f.engine.FollowingFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FollowingFeed: %v", err)
	}
	if feed == nil || len(feed) != 0 {
		t.Errorf("expected empty non-nil feed for empty following, got %v", feed)
	}
}

func TestFollowingFeedFiltersToFollowedAuthors(t *testing.T) {
	f := newFixture()
	f.users.add("u1", "alice")
	f.users.add("u2", "bob")
	f.users.add("u3", "carol")
	f.users.m["u1"].Following = []string{"u2"}
	f.addPost("p1", "u2", "from bob", time.Now())
	f.addPost("p2", "u3", "from carol", time.Now())

	feed, err := f.engine.FollowingFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FollowingFeed: %v", err)
	}
	if len(feed) != 1 || feed[0].PostID != "p1" {
		t.Errorf("expected only bob's post, got %v", feed)
	}
}

func TestUserFeedUnknownUsername(t *testing.T) {
	f := newFixture()

	_, err := f.engine.UserFeed(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserFeedByUsername(t *testing.T) {
	f := newFixture()
	f.users.add("u1", "alice")
	f.users.add("u2", "bob")
	f.addPost("p1", "u1", "mine", time.Now())
	f.addPost("p2", "u2", "theirs", time.Now())

	feed, err := f.engine.UserFeed(context.Background(), "alice")
	if err != nil {
		t.Fatalf("UserFeed: %v", err)
	}
	if len(feed) != 1 || feed[0].PostID != "p1" {
		t.Errorf("expected only alice's post, got %v", feed)
	}
}

func TestLikedFeedReturnsLikedPosts(t *testing.T) {
	f := newFixture()
	f.users.add("u1", "alice")
	f.users.add("u2", "bob")
	f.users.m["u1"].LikedPosts = []string{"p2"}
	f.addPost("p1", "u2", "not liked", time.Now())
	f.addPost("p2", "u2", "liked", time.Now())

	feed, err := f.engine.LikedFeed(context.Background(), "u1")
	if err != nil {
		t.Fatalf("LikedFeed: %v", err)
	}
	if len(feed) != 1 || feed[0].PostID != "p2" {
		t.Errorf("expected only liked post, got %v", feed)
	}
}

func TestLikedFeedUnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.engine.LikedFeed(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
