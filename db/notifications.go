package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"chirp/models"
)

// NotificationRepo is a typed accessor over the notifications collection.
type NotificationRepo struct {
	coll *mongo.Collection
}

func NewNotificationRepo(s *Store) *NotificationRepo {
	return &NotificationRepo{coll: s.Notifications}
}

func (r *NotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var n models.Notification
	err = r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&n)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepo) FindByRecipient(ctx context.Context, userID string) ([]models.Notification, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"to": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"to": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	return err
}

func (r *NotificationRepo) DeleteByRecipient(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"to": userID})
	return err
}

func (r *NotificationRepo) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
