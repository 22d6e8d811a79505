package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlanModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Topics      []string           `bson:"topics"`
	Deadline    *time.Time         `bson:"deadline,omitempty"`
	UserID      string             `bson:"userId"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
