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
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	m, err := ToUserModel(user)
	if err != nil {
		return fmt.Errorf("failed to map user: %w", err)
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = m.ID.Hex()
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var m model.UserModel
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return ToUserEntity(&m), nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	m, err := ToUserModel(user)
	if err != nil {
		return fmt.Errorf("failed to map user: %w", err)
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
