package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet is the owning record for photo attachments. Photos holds attachment
// references (retrieval URLs or bare blob ids); the first entry is the
// primary display photo.
type Pet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Species   string             `bson:"species" json:"species"`
	Breed     string             `bson:"breed,omitempty" json:"breed,omitempty"`
	Age       int                `bson:"age" json:"age"`
	Weight    float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Owner     string             `bson:"owner" json:"owner"`
	Photos    []string           `bson:"photos" json:"photos"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
