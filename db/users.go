package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chirp/models"
)

// UserRepo is a typed accessor over the users collection. No business
// rules live here.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{coll: s.Users}
}

func (r *UserRepo) Insert(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddLikedPost and RemoveLikedPost are the user-side half of the like
// invariant. $addToSet/$pull keep the operation idempotent.
func (r *UserRepo) AddLikedPost(ctx context.Context, userID, postID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$addToSet": bson.M{"likedPosts": postID}},
	)
	return err
}

func (r *UserRepo) RemoveLikedPost(ctx context.Context, userID, postID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"likedPosts": postID}},
	)
	return err
}

func (r *UserRepo) Follow(ctx context.Context, followerID, targetID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": followerID},
		bson.M{"$addToSet": bson.M{"following": targetID}},
	)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"userid": targetID},
		bson.M{"$addToSet": bson.M{"followers": followerID}},
	)
	return err
}

func (r *UserRepo) Unfollow(ctx context.Context, followerID, targetID string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": followerID},
		bson.M{"$pull": bson.M{"following": targetID}},
	)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"userid": targetID},
		bson.M{"$pull": bson.M{"followers": followerID}},
	)
	return err
}

// ProfilesByIDs fetches the redacted public shape for a batch of users.
// Redaction happens at the projection, so secrets never leave the store.
func (r *UserRepo) ProfilesByIDs(ctx context.Context, userIDs []string) (map[string]models.PublicProfile, error) {
	profiles := make(map[string]models.PublicProfile)
	if len(userIDs) == 0 {
		return profiles, nil
	}

	projection := bson.M{"userid": 1, "username": 1, "profileImg": 1}
	cursor, err := r.coll.Find(ctx,
		bson.M{"userid": bson.M{"$in": userIDs}},
		options.Find().SetProjection(projection),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.PublicProfile
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	for _, p := range results {
		profiles[p.UserID] = p
	}
	return profiles, nil
}
