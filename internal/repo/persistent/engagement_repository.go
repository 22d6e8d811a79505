package persistent

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentCounter and ReactionCounter back the optional response enrichment.
// The post usecase holds them as nilable references: when the sibling
// subsystems are not deployed the counters are simply nil.

type commentRepository struct {
	coll *mongo.Collection
}

func NewCommentCounter(db *mongo.Database) *commentRepository {
	return &commentRepository{coll: db.Collection("comments")}
}

func (r *commentRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

type reactionRepository struct {
	coll *mongo.Collection
}

func NewReactionCounter(db *mongo.Database) *reactionRepository {
	return &reactionRepository{coll: db.Collection("reactions")}
}

func (r *reactionRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"postId": postID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}
