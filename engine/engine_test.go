package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chirp/db"
	"chirp/models"
	"chirp/mq"
	"chirp/utils"
)

// In-memory stand-ins for the Mongo-backed repositories. They mirror the
// repository semantics: atomic set ops are idempotent, lookups return
// db.ErrNotFound, finds come back newest first.

type fakeUsers struct {
	m map[string]*models.User

	addLikedErr    error
	removeLikedErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{m: make(map[string]*models.User)}
}

func (f *fakeUsers) add(id, username string) *models.User {
	u := &models.User{
		UserID:     id,
		Username:   username,
		ProfileImg: "/static/userpic/" + id + ".jpg",
		Following:  []string{},
		Followers:  []string{},
		LikedPosts: []string{},
		CreatedAt:  time.Now(),
	}
	f.m[id] = u
	return u
}

func (f *fakeUsers) GetByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := f.m[userID]
	if !ok {
		return nil, db.ErrNotFound
	}
	cp := *u
	cp.Following = append([]string{}, u.Following...)
	cp.LikedPosts = append([]string{}, u.LikedPosts...)
	return &cp, nil
}

func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for id, u := range f.m {
		if u.Username == username {
			return f.GetByID(ctx, id)
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUsers) AddLikedPost(_ context.Context, userID, postID string) error {
	if f.addLikedErr != nil {
		return f.addLikedErr
	}
	if u, ok := f.m[userID]; ok && !utils.Contains(u.LikedPosts, postID) {
		u.LikedPosts = append(u.LikedPosts, postID)
	}
	return nil
}

func (f *fakeUsers) RemoveLikedPost(_ context.Context, userID, postID string) error {
	if f.removeLikedErr != nil {
		return f.removeLikedErr
	}
	if u, ok := f.m[userID]; ok {
		u.LikedPosts = utils.Without(u.LikedPosts, postID)
	}
	return nil
}

func (f *fakeUsers) Follow(_ context.Context, followerID, targetID string) error {
	if u, ok := f.m[followerID]; ok && !utils.Contains(u.Following, targetID) {
		u.Following = append(u.Following, targetID)
	}
	if u, ok := f.m[targetID]; ok && !utils.Contains(u.Followers, followerID) {
		u.Followers = append(u.Followers, followerID)
	}
	return nil
}

func (f *fakeUsers) Unfollow(_ context.Context, followerID, targetID string) error {
	if u, ok := f.m[followerID]; ok {
		u.Following = utils.Without(u.Following, targetID)
	}
	if u, ok := f.m[targetID]; ok {
		u.Followers = utils.Without(u.Followers, followerID)
	}
	return nil
}

func (f *fakeUsers) ProfilesByIDs(_ context.Context, userIDs []string) (map[string]models.PublicProfile, error) {
	profiles := make(map[string]models.PublicProfile)
	for _, id := range userIDs {
		if u, ok := f.m[id]; ok {
			profiles[id] = models.PublicProfile{
				UserID:     u.UserID,
				Username:   u.Username,
				ProfileImg: u.ProfileImg,
			}
		}
	}
	return profiles, nil
}

type fakePosts struct {
	list []*models.Post // insertion order is store order

	addLikeErr error
	appendErr  error
	deleteErr  error
}

func (f *fakePosts) find(postID string) *models.Post {
	for _, p := range f.list {
		if p.PostID == postID {
			return p
		}
	}
	return nil
}

func (f *fakePosts) Insert(_ context.Context, post *models.Post) error {
	cp := *post
	f.list = append(f.list, &cp)
	return nil
}

func (f *fakePosts) GetByID(_ context.Context, postID string) (*models.Post, error) {
	p := f.find(postID)
	if p == nil {
		return nil, db.ErrNotFound
	}
	cp := *p
	cp.Likes = append([]string{}, p.Likes...)
	cp.Comments = append([]models.Comment{}, p.Comments...)
	return &cp, nil
}

func (f *fakePosts) Delete(_ context.Context, postID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, p := range f.list {
		if p.PostID == postID {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakePosts) AddLike(_ context.Context, postID, userID string) error {
	if f.addLikeErr != nil {
		return f.addLikeErr
	}
	if p := f.find(postID); p != nil && !utils.Contains(p.Likes, userID) {
		p.Likes = append(p.Likes, userID)
	}
	return nil
}

func (f *fakePosts) RemoveLike(_ context.Context, postID, userID string) error {
	if p := f.find(postID); p != nil {
		p.Likes = utils.Without(p.Likes, userID)
	}
	return nil
}

func (f *fakePosts) AppendComment(_ context.Context, postID string, comment models.Comment) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if p := f.find(postID); p != nil {
		p.Comments = append(p.Comments, comment)
	}
	return nil
}

func (f *fakePosts) newestFirst(keep func(*models.Post) bool) []models.Post {
	out := []models.Post{}
	for _, p := range f.list {
		if keep(p) {
			out = append(out, *p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (f *fakePosts) All(_ context.Context) ([]models.Post, error) {
	return f.newestFirst(func(*models.Post) bool { return true }), nil
}

func (f *fakePosts) ByAuthor(_ context.Context, userID string) ([]models.Post, error) {
	return f.newestFirst(func(p *models.Post) bool { return p.UserID == userID }), nil
}

func (f *fakePosts) ByAuthors(_ context.Context, userIDs []string) ([]models.Post, error) {
	if len(userIDs) == 0 {
		return []models.Post{}, nil
	}
	return f.newestFirst(func(p *models.Post) bool { return utils.Contains(userIDs, p.UserID) }), nil
}

func (f *fakePosts) ByIDs(_ context.Context, postIDs []string) ([]models.Post, error) {
	if len(postIDs) == 0 {
		return []models.Post{}, nil
	}
	return f.newestFirst(func(p *models.Post) bool { return utils.Contains(postIDs, p.PostID) }), nil
}

type fakeNotifications struct {
	list []models.Notification

	insertErr error
}

func (f *fakeNotifications) Insert(_ context.Context, n *models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	f.list = append(f.list, *n)
	return nil
}

func (f *fakeNotifications) GetByID(_ context.Context, id string) (*models.Notification, error) {
	for _, n := range f.list {
		if n.ID.Hex() == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeNotifications) FindByRecipient(_ context.Context, userID string) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range f.list {
		if n.To == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkAllRead(_ context.Context, userID string) error {
	for i := range f.list {
		if f.list[i].To == userID {
			f.list[i].Read = true
		}
	}
	return nil
}

func (f *fakeNotifications) DeleteByRecipient(_ context.Context, userID string) error {
	kept := f.list[:0]
	for _, n := range f.list {
		if n.To != userID {
			kept = append(kept, n)
		}
	}
	f.list = kept
	return nil
}

func (f *fakeNotifications) DeleteByID(_ context.Context, id string) error {
	for i, n := range f.list {
		if n.ID.Hex() == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBlobs struct {
	uploads   int
	deleted   []string
	deleteErr error
}

func (f *fakeBlobs) Upload(_ context.Context, data string) (string, error) {
	f.uploads++
	return fmt.Sprintf("/static/postpic/blob%d.jpg", f.uploads), nil
}

func (f *fakeBlobs) Delete(_ context.Context, assetID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, assetID)
	return nil
}

type fakeReporter struct {
	events []mq.ReconcileEvent
}

func (f *fakeReporter) Emit(_ context.Context, event mq.ReconcileEvent) {
	f.events = append(f.events, event)
}

type fixture struct {
	engine        *Engine
	users         *fakeUsers
	posts         *fakePosts
	notifications *fakeNotifications
	blobs         *fakeBlobs
	reporter      *fakeReporter
}

func newFixture() *fixture {
	f := &fixture{
		users:         newFakeUsers(),
		posts:         &fakePosts{},
		notifications: &fakeNotifications{},
		blobs:         &fakeBlobs{},
		reporter:      &fakeReporter{},
	}
	f.engine = New(f.users, f.posts, f.notifications, f.blobs, f.reporter)
	return f
}

func (f *fixture) addPost(postID, authorID, text string, createdAt time.Time) *models.Post {
	p := &models.Post{
		PostID:    postID,
		UserID:    authorID,
		Text:      text,
		Likes:     []string{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	}
	f.posts.list = append(f.posts.list, p)
	return p
}
