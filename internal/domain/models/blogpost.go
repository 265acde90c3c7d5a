// internal/domain/models/blogpost.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an article on the public blog. Posts are created as
// drafts and only published posts appear on the public listing.
type BlogPost struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"`

	Excerpt  string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content  string   `bson:"content" json:"content"`
	Author   string   `bson:"author" json:"author"`
	Category string   `bson:"category,omitempty" json:"category,omitempty"`
	Tags     []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Image    string   `bson:"image,omitempty" json:"image,omitempty"`

	Status string `bson:"status" json:"status"` // draft | published

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
