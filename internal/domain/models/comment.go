// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a reader comment attached to a blog post.
type Comment struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	PostID  primitive.ObjectID `bson:"post_id" json:"postId"`
	Author  string             `bson:"author" json:"author"`
	Content string             `bson:"content" json:"content"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
