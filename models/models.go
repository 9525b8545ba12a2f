package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	UserID     string    `json:"userid" bson:"userid"`
	Username   string    `json:"username" bson:"username"`
	Email      string    `json:"email" bson:"email"`
	Password   string    `json:"-" bson:"password"`
	ProfileImg string    `json:"profileImg,omitempty" bson:"profileImg,omitempty"`
	Following  []string  `json:"following" bson:"following"`
	Followers  []string  `json:"followers" bson:"followers"`
	LikedPosts []string  `json:"likedPosts" bson:"likedPosts"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// PublicProfile is the redacted user shape embedded in feed and
// notification responses. No password, no email.
type PublicProfile struct {
	UserID     string `json:"userid" bson:"userid"`
	Username   string `json:"username" bson:"username"`
	ProfileImg string `json:"profileImg,omitempty" bson:"profileImg,omitempty"`
}

type Comment struct {
	UserID    string    `json:"userid" bson:"userid"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// Hydrated by the feed assembler, never persisted.
	Author *PublicProfile `json:"user,omitempty" bson:"-"`
}

type Post struct {
	PostID    string    `json:"postid" bson:"postid"`
	UserID    string    `json:"userid" bson:"userid"`
	Text      string    `json:"text,omitempty" bson:"text,omitempty"`
	Img       string    `json:"img,omitempty" bson:"img,omitempty"`
	Likes     []string  `json:"likes" bson:"likes"`
	Comments  []Comment `json:"comments" bson:"comments"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`

	// Hydrated by the feed assembler, never persisted.
	Author *PublicProfile `json:"user,omitempty" bson:"-"`
}

const (
	NotificationLike   = "like"
	NotificationFollow = "follow"
)

type Notification struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	From      string             `json:"from" bson:"from"`
	To        string             `json:"to" bson:"to"`
	Type      string             `json:"type" bson:"type"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`

	// Hydrated sender profile, never persisted.
	Sender *PublicProfile `json:"from_user,omitempty" bson:"-"`
}
