package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"

	"github.com/stretchr/testify/assert"
)

type fakePlanRepo struct {
	plans  map[string]*entity.LearningPlan
	nextID int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*entity.LearningPlan)}
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.LearningPlan) error {
	r.nextID++
	plan.ID = fmt.Sprintf("plan-%d", r.nextID)
	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *fakePlanRepo) GetByID(ctx context.Context, id string) (*entity.LearningPlan, error) {
	plan, ok := r.plans[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	clone := *plan
	return &clone, nil
}

func (r *fakePlanRepo) ListAll(ctx context.Context) ([]*entity.LearningPlan, error) {
	plans := make([]*entity.LearningPlan, 0, len(r.plans))
	for _, p := range r.plans {
		clone := *p
		plans = append(plans, &clone)
	}
	return plans, nil
}

func (r *fakePlanRepo) ListByUser(ctx context.Context, userID string) ([]*entity.LearningPlan, error) {
	var plans []*entity.LearningPlan
	for _, p := range r.plans {
		if p.UserID == userID {
			clone := *p
			plans = append(plans, &clone)
		}
	}
	return plans, nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.LearningPlan) error {
	if _, ok := r.plans[plan.ID]; !ok {
		return apperr.ErrNotFound
	}
	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.plans[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

func TestCreatePlan(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	deadline := time.Now().Add(30 * 24 * time.Hour)
	plan, err := uc.CreatePlan(context.Background(), "user-1", "Learn Go", "stdlib first", []string{"goroutines", "interfaces"}, &deadline)

	assert.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Learn Go", plan.Title)
	assert.Equal(t, []string{"goroutines", "interfaces"}, plan.Topics)
	assert.NotNil(t, plan.Deadline)
}

func TestCreatePlan_EmptyTitle(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	_, err := uc.CreatePlan(context.Background(), "user-1", "", "desc", nil, nil)

	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestUpdatePlan(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	created, err := uc.CreatePlan(context.Background(), "user-1", "Learn Go", "", nil, nil)
	assert.NoError(t, err)

	updated, err := uc.UpdatePlan(context.Background(), created.ID, "user-1", "Learn Go deeply", "with tests", []string{"testing"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "Learn Go deeply", updated.Title)
	assert.Equal(t, []string{"testing"}, updated.Topics)
}

func TestUpdatePlan_NotOwner(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	created, err := uc.CreatePlan(context.Background(), "user-1", "Learn Go", "", nil, nil)
	assert.NoError(t, err)

	_, err = uc.UpdatePlan(context.Background(), created.ID, "user-2", "Hijack", "", nil, nil)

	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestDeletePlan(t *testing.T) {
	repo := newFakePlanRepo()
	uc := NewPlanUseCase(repo)

	created, err := uc.CreatePlan(context.Background(), "user-1", "Learn Go", "", nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, uc.DeletePlan(context.Background(), created.ID, "user-1"))
	assert.Empty(t, repo.plans)
}

func TestDeletePlan_NotOwner(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	created, err := uc.CreatePlan(context.Background(), "user-1", "Learn Go", "", nil, nil)
	assert.NoError(t, err)

	assert.ErrorIs(t, uc.DeletePlan(context.Background(), created.ID, "user-2"), apperr.ErrForbidden)
}

func TestGetUserPlans(t *testing.T) {
	uc := NewPlanUseCase(newFakePlanRepo())

	_, err := uc.CreatePlan(context.Background(), "user-1", "Mine", "", nil, nil)
	assert.NoError(t, err)
	_, err = uc.CreatePlan(context.Background(), "user-2", "Theirs", "", nil, nil)
	assert.NoError(t, err)

	plans, err := uc.GetUserPlans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "Mine", plans[0].Title)
}
