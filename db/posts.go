package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirp/models"
)

// PostRepo is a typed accessor over the posts collection.
type PostRepo struct {
	coll *mongo.Collection
}

func NewPostRepo(s *Store) *PostRepo {
	return &PostRepo{coll: s.Posts}
}

func (r *PostRepo) Insert(ctx context.Context, post *models.Post) error {
	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"postid": postID}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) Delete(ctx context.Context, postID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"postid": postID})
	return err
}

// AddLike and RemoveLike are the post-side half of the like invariant.
func (r *PostRepo) AddLike(ctx context.Context, postID, userID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"postid": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	return err
}

func (r *PostRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"postid": postID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	return err
}

// AppendComment pushes onto the comments array, preserving insertion order.
func (r *PostRepo) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"postid": postID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	return err
}

func (r *PostRepo) All(ctx context.Context) ([]models.Post, error) {
	return r.findNewestFirst(ctx, bson.M{})
}

func (r *PostRepo) ByAuthor(ctx context.Context, userID string) ([]models.Post, error) {
	return r.findNewestFirst(ctx, bson.M{"userid": userID})
}

func (r *PostRepo) ByAuthors(ctx context.Context, userIDs []string) ([]models.Post, error) {
	if len(userIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.findNewestFirst(ctx, bson.M{"userid": bson.M{"$in": userIDs}})
}

func (r *PostRepo) ByIDs(ctx context.Context, postIDs []string) ([]models.Post, error) {
	if len(postIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.findNewestFirst(ctx, bson.M{"postid": bson.M{"$in": postIDs}})
}

// findNewestFirst sorts on createdAt descending only; documents with equal
// timestamps come back in store order.
func (r *PostRepo) findNewestFirst(ctx context.Context, filter bson.M) ([]models.Post, error) {
	sortOrder := bson.D{{Key: "createdAt", Value: -1}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sortOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
