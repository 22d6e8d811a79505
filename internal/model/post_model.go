package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	Content    string             `bson:"content"`
	MediaIDs   []string           `bson:"mediaIds"`
	MediaTypes map[string]string  `bson:"mediaTypes"`
	ImageURLs  []string           `bson:"imageUrls"`
	VideoURL   string             `bson:"videoUrl,omitempty"`
	Likes      int                `bson:"likes"`
	Comments   []string           `bson:"comments"`
	CreatedAt  time.Time          `bson:"createdAt"`
}
