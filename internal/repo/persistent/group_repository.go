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

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListAll(ctx context.Context) ([]*entity.Group, error)
	ListByCreator(ctx context.Context, userID string) ([]*entity.Group, error)
	Update(ctx context.Context, group *entity.Group) error
	Delete(ctx context.Context, id string) error
}

type groupRepository struct {
	coll *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) GroupRepository {
	return &groupRepository{coll: db.Collection("groups")}
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	m, err := ToGroupModel(group)
	if err != nil {
		return fmt.Errorf("failed to map group: %w", err)
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	group.ID = m.ID.Hex()
	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var m model.GroupModel
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return ToGroupEntity(&m), nil
}

func (r *groupRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return false, fmt.Errorf("failed to count groups: %w", err)
	}
	return count > 0, nil
}

func (r *groupRepository) ListAll(ctx context.Context) ([]*entity.Group, error) {
	return r.list(ctx, bson.M{})
}

func (r *groupRepository) ListByCreator(ctx context.Context, userID string) ([]*entity.Group, error) {
	return r.list(ctx, bson.M{"createdBy": userID})
}

func (r *groupRepository) list(ctx context.Context, filter bson.M) ([]*entity.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer cursor.Close(ctx)

	var models []model.GroupModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("failed to decode groups: %w", err)
	}

	groups := make([]*entity.Group, len(models))
	for i := range models {
		groups[i] = ToGroupEntity(&models[i])
	}
	return groups, nil
}

func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	m, err := ToGroupModel(group)
	if err != nil {
		return fmt.Errorf("failed to map group: %w", err)
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
