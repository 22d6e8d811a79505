package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillsphere/internal/apperr"
	"skillsphere/internal/entity"
	"skillsphere/internal/repo/persistent"
	"skillsphere/pkg/logger"
	"skillsphere/pkg/mirror"
	"skillsphere/pkg/queue"
	"skillsphere/pkg/storage"
)

// CommentCounter and ReactionCounter are optional enrichment collaborators.
// A nil reference means the sibling subsystem is not deployed.
type CommentCounter interface {
	CountForPost(ctx context.Context, postID string) (int64, error)
}

type ReactionCounter interface {
	CountForPost(ctx context.Context, postID string) (int64, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID, content string, images []*entity.MediaUpload, video *entity.MediaUpload) (*entity.PostResponse, error)
	GetPost(ctx context.Context, postID string) (*entity.PostResponse, error)
	ListPosts(ctx context.Context) ([]*entity.PostResponse, error)
	GetUserPosts(ctx context.Context, userID string) ([]*entity.PostResponse, error)
	UpdatePost(ctx context.Context, postID, userID, content string, images []*entity.MediaUpload) (*entity.PostResponse, error)
	DeletePost(ctx context.Context, postID, userID string, isAdmin bool) error
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	userRepo    persistent.UserRepository
	store       storage.ObjectStore
	mirror      *mirror.Writer
	comments    CommentCounter
	reactions   ReactionCounter
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	store storage.ObjectStore,
	mirrorWriter *mirror.Writer,
	comments CommentCounter,
	reactions ReactionCounter,
	queueClient *queue.Client,
	log *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		userRepo:    userRepo,
		store:       store,
		mirror:      mirrorWriter,
		comments:    comments,
		reactions:   reactions,
		queueClient: queueClient,
		logger:      log,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, userID, content string, images []*entity.MediaUpload, video *entity.MediaUpload) (*entity.PostResponse, error) {
	if content == "" && len(images) == 0 && video == nil {
		return nil, fmt.Errorf("%w: post must have content, images, or a video", apperr.ErrInvalidRequest)
	}

	// Validate everything before any store write: one bad file rejects the
	// whole request with nothing persisted.
	if video != nil {
		if err := validateVideo(video); err != nil {
			return nil, err
		}
	}
	if err := validateImageBatch(images); err != nil {
		return nil, err
	}

	post := &entity.Post{
		UserID:     userID,
		Content:    content,
		MediaIDs:   []string{},
		MediaTypes: map[string]string{},
		ImageURLs:  []string{},
		Comments:   []string{},
		Likes:      0,
		CreatedAt:  time.Now(),
	}

	if video != nil {
		id, err := uc.storeMedia(ctx, video, storage.ClassVideo)
		if err != nil {
			return nil, err
		}
		post.MediaIDs = append(post.MediaIDs, id)
		post.MediaTypes[id] = videoContentType(video.ContentType)
		post.VideoURL = entity.MediaURL(id)
	}

	for _, image := range images {
		id, err := uc.storeMedia(ctx, image, storage.ClassImage)
		if err != nil {
			return nil, err
		}
		post.MediaIDs = append(post.MediaIDs, id)
		post.MediaTypes[id] = image.ContentType
	}
	if len(images) > 0 {
		post.ImageURLs = mediaURLs(post.MediaIDs)
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishPostCreated(post)
	}

	return uc.toResponse(ctx, post), nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID string) (*entity.PostResponse, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	response := uc.toResponse(ctx, post)
	uc.enrich(ctx, response)
	return response, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context) ([]*entity.PostResponse, error) {
	posts, err := uc.postRepo.ListAll(ctx)
	if err != nil {
		// Listing degrades to an empty feed rather than failing the request.
		uc.logger.Error("Failed to list posts: %v", err)
		return []*entity.PostResponse{}, nil
	}

	responses := make([]*entity.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = uc.toResponse(ctx, post)
	}
	return responses, nil
}

func (uc *postUseCase) GetUserPosts(ctx context.Context, userID string) ([]*entity.PostResponse, error) {
	posts, err := uc.postRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*entity.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = uc.toResponse(ctx, post)
	}
	return responses, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, postID, userID, content string, images []*entity.MediaUpload) (*entity.PostResponse, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		return nil, fmt.Errorf("%w: you can only update your own posts", apperr.ErrForbidden)
	}

	post.Content = content

	if len(images) > 0 {
		if err := validateImageBatch(images); err != nil {
			return nil, err
		}

		// Full replacement: drop every previously attached blob, then attach
		// the new set. Cleanup failures are logged and never abort the update.
		uc.deleteMedia(ctx, post.MediaIDs)

		post.MediaIDs = []string{}
		post.MediaTypes = map[string]string{}
		post.VideoURL = ""

		for _, image := range images {
			id, err := uc.storeMedia(ctx, image, storage.ClassImage)
			if err != nil {
				return nil, err
			}
			post.MediaIDs = append(post.MediaIDs, id)
			post.MediaTypes[id] = image.ContentType
		}
		post.ImageURLs = mediaURLs(post.MediaIDs)
	}

	if err := uc.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return uc.toResponse(ctx, post), nil
}

func (uc *postUseCase) DeletePost(ctx context.Context, postID, userID string, isAdmin bool) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID && !isAdmin {
		return fmt.Errorf("%w: you can only delete your own posts", apperr.ErrForbidden)
	}

	uc.deleteMedia(ctx, post.MediaIDs)

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// storeMedia writes the blob to the object store, then mirrors it to local
// disk. The mirror write is best-effort: the store id is authoritative and a
// mirror failure only logs.
func (uc *postUseCase) storeMedia(ctx context.Context, file *entity.MediaUpload, class storage.MediaClass) (string, error) {
	id, err := uc.store.Put(ctx, file.Data, file.Filename, file.ContentType, class)
	if err != nil {
		return "", fmt.Errorf("%w: failed to store media: %v", apperr.ErrStorage, err)
	}

	if err := uc.mirror.Write(id, file.Data); err != nil {
		uc.logger.Warn("Failed to mirror media %s: %v", id, err)
	}

	return id, nil
}

// deleteMedia removes blobs from the store and the mirror. Each attempt is
// independent; failures are logged and the loop continues.
func (uc *postUseCase) deleteMedia(ctx context.Context, mediaIDs []string) {
	for _, id := range mediaIDs {
		if err := uc.store.Delete(ctx, id); err != nil {
			uc.logger.Error("Failed to delete media %s from store: %v", id, err)
		}
		if err := uc.mirror.Delete(id); err != nil {
			uc.logger.Error("Failed to delete mirrored media %s: %v", id, err)
		}
	}
}

// toResponse projects a post for callers, resolving the owner's display name
// and avatar. A missing or unreadable owner degrades to a sentinel instead of
// failing the projection.
func (uc *postUseCase) toResponse(ctx context.Context, post *entity.Post) *entity.PostResponse {
	response := &entity.PostResponse{
		ID:         post.ID,
		UserID:     post.UserID,
		Content:    post.Content,
		MediaIDs:   post.MediaIDs,
		MediaTypes: post.MediaTypes,
		ImageURLs:  post.ImageURLs,
		VideoURL:   post.VideoURL,
		Likes:      post.Likes,
		Comments:   post.Comments,
		CreatedAt:  post.CreatedAt,
	}

	user, err := uc.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			uc.logger.Error("Failed to fetch user for post %s: %v", post.ID, err)
		}
		response.UserName = entity.DeletedUserName
		return response
	}

	response.UserName = user.DisplayName()
	response.UserAvatar = user.AvatarURL
	return response
}

// enrich attaches comment and reaction counts when those subsystems are
// configured. Enrichment is additive: a lookup failure logs and leaves the
// projection untouched.
func (uc *postUseCase) enrich(ctx context.Context, response *entity.PostResponse) {
	if uc.comments != nil {
		count, err := uc.comments.CountForPost(ctx, response.ID)
		if err != nil {
			uc.logger.Error("Failed to count comments for post %s: %v", response.ID, err)
		} else {
			response.CommentCount = &count
		}
	}

	if uc.reactions != nil {
		count, err := uc.reactions.CountForPost(ctx, response.ID)
		if err != nil {
			uc.logger.Error("Failed to count reactions for post %s: %v", response.ID, err)
		} else {
			response.ReactionCount = &count
		}
	}
}

func (uc *postUseCase) publishPostCreated(post *entity.Post) {
	event := map[string]interface{}{
		"type":    "post_created",
		"post_id": post.ID,
		"user_id": post.UserID,
	}

	if err := uc.queueClient.PublishPostCreated(event); err != nil {
		uc.logger.Error("Failed to publish post created event for %s: %v", post.ID, err)
	}
}

func mediaURLs(mediaIDs []string) []string {
	urls := make([]string, len(mediaIDs))
	for i, id := range mediaIDs {
		urls[i] = entity.MediaURL(id)
	}
	return urls
}
