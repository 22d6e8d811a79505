package persistent

import (
	"context"
	"errors"
	"fmt"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	ListAll(ctx context.Context) ([]*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection("posts")}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	m, err := ToPostModel(post)
	if err != nil {
		return fmt.Errorf("failed to map post: %w", err)
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	post.ID = m.ID.Hex()
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var m model.PostModel
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	return ToPostEntity(&m), nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	return r.list(ctx, bson.M{})
}

func (r *postRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *postRepository) list(ctx context.Context, filter bson.M) ([]*entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer cursor.Close(ctx)

	var models []model.PostModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	posts := make([]*entity.Post, len(models))
	for i := range models {
		posts[i] = ToPostEntity(&models[i])
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	m, err := ToPostModel(post)
	if err != nil {
		return fmt.Errorf("failed to map post: %w", err)
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
