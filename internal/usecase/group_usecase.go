package usecase

import (
	"context"
	"fmt"
	"time"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/internal/repo/persistent"
	"skillsphere/pkg/logger"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/storage"
)

type GroupUseCase interface {
	CreateGroup(ctx context.Context, name, description, userID string, coverImage *entity.MediaUpload) (*entity.Group, error)
	UpdateGroup(ctx context.Context, groupID, userID, name, description string) (*entity.Group, error)
	DeleteGroup(ctx context.Context, groupID, userID string) error
	GetUserGroups(ctx context.Context, userID string) ([]*entity.Group, error)
	GetAllGroups(ctx context.Context) ([]*entity.Group, error)
}

type groupUseCase struct {
	groupRepo persistent.GroupRepository
	store     storage.ObjectStore
	mirror    *mirror.Writer
	logger    *logger.Logger
}

func NewGroupUseCase(
	groupRepo persistent.GroupRepository,
	store storage.ObjectStore,
	mirrorWriter *mirror.Writer,
	log *logger.Logger,
) GroupUseCase {
	return &groupUseCase{
		groupRepo: groupRepo,
		store:     store,
		mirror:    mirrorWriter,
		logger:    log,
	}
}

func (uc *groupUseCase) CreateGroup(ctx context.Context, name, description, userID string, coverImage *entity.MediaUpload) (*entity.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", apperr.ErrInvalidRequest)
	}

	exists, err := uc.groupRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check group name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: group name already exists", apperr.ErrInvalidRequest)
	}

	group := &entity.Group{
		Name:        name,
		Description: description,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}

	if coverImage != nil {
		if err := validateImage(coverImage); err != nil {
			return nil, err
		}

		id, err := uc.store.Put(ctx, coverImage.Data, coverImage.Filename, coverImage.ContentType, storage.ClassImage)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to store cover image: %v", apperr.ErrStorage, err)
		}
		if err := uc.mirror.Write(id, coverImage.Data); err != nil {
			uc.logger.Warn("Failed to mirror cover image %s: %v", id, err)
		}

		group.CoverMediaID = id
		group.CoverImageURL = entity.MediaURL(id)
	}

	if err := uc.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (uc *groupUseCase) UpdateGroup(ctx context.Context, groupID, userID, name, description string) (*entity.Group, error) {
	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if group.CreatedBy != userID {
		return nil, fmt.Errorf("%w: you don't have permission to update this group", apperr.ErrForbidden)
	}

	// Skip the uniqueness check when the name is unchanged
	if group.Name != name {
		exists, err := uc.groupRepo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check group name: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: group name already exists", apperr.ErrInvalidRequest)
		}
	}

	group.Name = name
	group.Description = description

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (uc *groupUseCase) DeleteGroup(ctx context.Context, groupID, userID string) error {
	group, err := uc.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}

	if group.CreatedBy != userID {
		return fmt.Errorf("%w: you don't have permission to delete this group", apperr.ErrForbidden)
	}

	// Cover blob cleanup is best-effort, same as post media
	if group.CoverMediaID != "" {
		if err := uc.store.Delete(ctx, group.CoverMediaID); err != nil {
			uc.logger.Error("Failed to delete cover image %s from store: %v", group.CoverMediaID, err)
		}
		if err := uc.mirror.Delete(group.CoverMediaID); err != nil {
			uc.logger.Error("Failed to delete mirrored cover image %s: %v", group.CoverMediaID, err)
		}
	}

	if err := uc.groupRepo.Delete(ctx, groupID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

func (uc *groupUseCase) GetUserGroups(ctx context.Context, userID string) ([]*entity.Group, error) {
	return uc.groupRepo.ListByCreator(ctx, userID)
}

func (uc *groupUseCase) GetAllGroups(ctx context.Context) ([]*entity.Group, error) {
	return uc.groupRepo.ListAll(ctx)
}
