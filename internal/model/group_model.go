package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	CreatedBy     string             `bson:"createdBy"`
	CoverMediaID  string             `bson:"coverMediaId,omitempty"`
	CoverImageURL string             `bson:"coverImageUrl,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}
