package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Password  string             `bson:"password"`
	AvatarURL string             `bson:"avatarUrl,omitempty"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
}
