package usecase

import (
	"context"
	"fmt"
	"time"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/internal/repo/persistent"
)

type PlanUseCase interface {
	CreatePlan(ctx context.Context, userID, title, description string, topics []string, deadline *time.Time) (*entity.LearningPlan, error)
	GetPlan(ctx context.Context, planID string) (*entity.LearningPlan, error)
	GetAllPlans(ctx context.Context) ([]*entity.LearningPlan, error)
	GetUserPlans(ctx context.Context, userID string) ([]*entity.LearningPlan, error)
	UpdatePlan(ctx context.Context, planID, userID, title, description string, topics []string, deadline *time.Time) (*entity.LearningPlan, error)
	DeletePlan(ctx context.Context, planID, userID string) error
}

type planUseCase struct {
	planRepo persistent.PlanRepository
}

func NewPlanUseCase(planRepo persistent.PlanRepository) PlanUseCase {
	return &planUseCase{planRepo: planRepo}
}

func (uc *planUseCase) CreatePlan(ctx context.Context, userID, title, description string, topics []string, deadline *time.Time) (*entity.LearningPlan, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: plan title is required", apperr.ErrInvalidRequest)
	}

	plan := &entity.LearningPlan{
		Title:       title,
		Description: description,
		Topics:      topics,
		Deadline:    deadline,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return plan, nil
}

func (uc *planUseCase) GetPlan(ctx context.Context, planID string) (*entity.LearningPlan, error) {
	return uc.planRepo.GetByID(ctx, planID)
}

func (uc *planUseCase) GetAllPlans(ctx context.Context) ([]*entity.LearningPlan, error) {
	return uc.planRepo.ListAll(ctx)
}

func (uc *planUseCase) GetUserPlans(ctx context.Context, userID string) ([]*entity.LearningPlan, error) {
	return uc.planRepo.ListByUser(ctx, userID)
}

func (uc *planUseCase) UpdatePlan(ctx context.Context, planID, userID, title, description string, topics []string, deadline *time.Time) (*entity.LearningPlan, error) {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if plan.UserID != userID {
		return nil, fmt.Errorf("%w: you can only update your own plans", apperr.ErrForbidden)
	}

	plan.Title = title
	plan.Description = description
	plan.Topics = topics
	plan.Deadline = deadline

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	return plan, nil
}

func (uc *planUseCase) DeletePlan(ctx context.Context, planID, userID string) error {
	plan, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		return err
	}

	if plan.UserID != userID {
		return fmt.Errorf("%w: you can only delete your own plans", apperr.ErrForbidden)
	}

	return uc.planRepo.Delete(ctx, planID)
}
