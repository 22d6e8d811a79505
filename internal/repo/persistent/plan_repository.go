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

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.LearningPlan) error
	GetByID(ctx context.Context, id string) (*entity.LearningPlan, error)
	ListAll(ctx context.Context) ([]*entity.LearningPlan, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.LearningPlan, error)
	Update(ctx context.Context, plan *entity.LearningPlan) error
	Delete(ctx context.Context, id string) error
}

type planRepository struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) PlanRepository {
	return &planRepository{coll: db.Collection("learning_plans")}
}

func (r *planRepository) Create(ctx context.Context, plan *entity.LearningPlan) error {
	m, err := ToPlanModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan: %w", err)
	}
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	plan.ID = m.ID.Hex()
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*entity.LearningPlan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	var m model.PlanModel
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find plan: %w", err)
	}
	return ToPlanEntity(&m), nil
}

func (r *planRepository) ListAll(ctx context.Context) ([]*entity.LearningPlan, error) {
	return r.list(ctx, bson.M{})
}

func (r *planRepository) ListByUser(ctx context.Context, userID string) ([]*entity.LearningPlan, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *planRepository) list(ctx context.Context, filter bson.M) ([]*entity.LearningPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer cursor.Close(ctx)

	var models []model.PlanModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, fmt.Errorf("failed to decode plans: %w", err)
	}

	plans := make([]*entity.LearningPlan, len(models))
	for i := range models {
		plans[i] = ToPlanEntity(&models[i])
	}
	return plans, nil
}

func (r *planRepository) Update(ctx context.Context, plan *entity.LearningPlan) error {
	m, err := ToPlanModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan: %w", err)
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
