package usecase

import (
	"context"
	"fmt"
	"testing"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/pkg/logger"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/storage/memory"

	"github.com/stretchr/testify/assert"
)

type fakeGroupRepo struct {
	groups map[string]*entity.Group
	nextID int
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*entity.Group)}
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *entity.Group) error {
	r.nextID++
	group.ID = fmt.Sprintf("group-%d", r.nextID)
	clone := *group
	r.groups[group.ID] = &clone
	return nil
}

func (r *fakeGroupRepo) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	group, ok := r.groups[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	clone := *group
	return &clone, nil
}

func (r *fakeGroupRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, g := range r.groups {
		if g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGroupRepo) ListAll(ctx context.Context) ([]*entity.Group, error) {
	groups := make([]*entity.Group, 0, len(r.groups))
	for _, g := range r.groups {
		clone := *g
		groups = append(groups, &clone)
	}
	return groups, nil
}

func (r *fakeGroupRepo) ListByCreator(ctx context.Context, userID string) ([]*entity.Group, error) {
	var groups []*entity.Group
	for _, g := range r.groups {
		if g.CreatedBy == userID {
			clone := *g
			groups = append(groups, &clone)
		}
	}
	return groups, nil
}

func (r *fakeGroupRepo) Update(ctx context.Context, group *entity.Group) error {
	if _, ok := r.groups[group.ID]; !ok {
		return apperr.ErrNotFound
	}
	clone := *group
	r.groups[group.ID] = &clone
	return nil
}

func (r *fakeGroupRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.groups[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

type groupFixture struct {
	uc    GroupUseCase
	repo  *fakeGroupRepo
	store *memory.Store
}

func newGroupFixture(t *testing.T) *groupFixture {
	t.Helper()

	mirrorWriter, err := mirror.NewWriter(t.TempDir())
	assert.NoError(t, err)

	repo := newFakeGroupRepo()
	store := memory.NewStore()
	uc := NewGroupUseCase(repo, store, mirrorWriter, logger.New())

	return &groupFixture{uc: uc, repo: repo, store: store}
}

func TestCreateGroup(t *testing.T) {
	f := newGroupFixture(t)

	group, err := f.uc.CreateGroup(context.Background(), "Go Study", "weekly meetup", "user-1", nil)

	assert.NoError(t, err)
	assert.NotEmpty(t, group.ID)
	assert.Equal(t, "Go Study", group.Name)
	assert.Equal(t, "user-1", group.CreatedBy)
	assert.Empty(t, group.CoverImageURL)
}

func TestCreateGroup_EmptyName(t *testing.T) {
	f := newGroupFixture(t)

	_, err := f.uc.CreateGroup(context.Background(), "", "desc", "user-1", nil)

	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestCreateGroup_DuplicateName(t *testing.T) {
	f := newGroupFixture(t)

	_, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", nil)
	assert.NoError(t, err)

	_, err = f.uc.CreateGroup(context.Background(), "Go Study", "", "user-2", nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestCreateGroup_WithCover(t *testing.T) {
	f := newGroupFixture(t)

	group, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", pngUpload("cover.png"))

	assert.NoError(t, err)
	assert.NotEmpty(t, group.CoverMediaID)
	assert.Equal(t, entity.MediaURL(group.CoverMediaID), group.CoverImageURL)
	assert.Equal(t, 1, f.store.Len())
}

func TestCreateGroup_BadCoverType(t *testing.T) {
	f := newGroupFixture(t)

	cover := &entity.MediaUpload{Filename: "cover.pdf", ContentType: "application/pdf", Size: 4, Data: []byte("pdf!")}
	_, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", cover)

	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
	assert.Equal(t, 0, f.store.Len())
	assert.Empty(t, f.repo.groups)
}

func TestUpdateGroup(t *testing.T) {
	f := newGroupFixture(t)

	created, err := f.uc.CreateGroup(context.Background(), "Go Study", "old", "user-1", nil)
	assert.NoError(t, err)

	updated, err := f.uc.UpdateGroup(context.Background(), created.ID, "user-1", "Go Study", "new")

	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Description)
}

func TestUpdateGroup_NotOwner(t *testing.T) {
	f := newGroupFixture(t)

	created, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", nil)
	assert.NoError(t, err)

	_, err = f.uc.UpdateGroup(context.Background(), created.ID, "user-2", "Taken", "")

	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestUpdateGroup_RenameToTakenName(t *testing.T) {
	f := newGroupFixture(t)

	_, err := f.uc.CreateGroup(context.Background(), "First", "", "user-1", nil)
	assert.NoError(t, err)
	second, err := f.uc.CreateGroup(context.Background(), "Second", "", "user-1", nil)
	assert.NoError(t, err)

	_, err = f.uc.UpdateGroup(context.Background(), second.ID, "user-1", "First", "")

	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestDeleteGroup(t *testing.T) {
	f := newGroupFixture(t)

	created, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", pngUpload("cover.png"))
	assert.NoError(t, err)

	err = f.uc.DeleteGroup(context.Background(), created.ID, "user-1")

	assert.NoError(t, err)
	assert.Empty(t, f.repo.groups)
	assert.Equal(t, 0, f.store.Len())
}

func TestDeleteGroup_NotOwner(t *testing.T) {
	f := newGroupFixture(t)

	created, err := f.uc.CreateGroup(context.Background(), "Go Study", "", "user-1", nil)
	assert.NoError(t, err)

	err = f.uc.DeleteGroup(context.Background(), created.ID, "user-2")

	assert.ErrorIs(t, err, apperr.ErrForbidden)
	assert.Len(t, f.repo.groups, 1)
}

func TestGetUserGroups(t *testing.T) {
	f := newGroupFixture(t)

	_, err := f.uc.CreateGroup(context.Background(), "Mine", "", "user-1", nil)
	assert.NoError(t, err)
	_, err = f.uc.CreateGroup(context.Background(), "Theirs", "", "user-2", nil)
	assert.NoError(t, err)

	groups, err := f.uc.GetUserGroups(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, "Mine", groups[0].Name)

	all, err := f.uc.GetAllGroups(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
