package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"skillsphere/internal/entity"
	"skillsphere/internal/usecase"
	"skillsphere/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      log,
	}
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with text content, image files, and/or one video file. At least content or one media file is required.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content formData string false "Post text content"
// @Param        images formData file false "Image files (image/*), multiple allowed"
// @Param        video formData file false "Video file (mp4/quicktime, up to 15 MiB)"
// @Success      201  {object}  entity.PostResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	content := c.PostForm("content")

	images, video, err := parseMediaForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.postUseCase.CreatePost(c.Request.Context(), userID, content, images, video)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a post projection enriched with comment and reaction counts when available
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	response, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListPosts godoc
// @Summary      List all posts
// @Description  List every post, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.PostResponse
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	responses, err := h.postUseCase.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// GetUserPosts godoc
// @Summary      List posts by user
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {array}  entity.PostResponse
// @Router       /posts/user/{id} [get]
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	responses, err := h.postUseCase.GetUserPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// GetMyPosts godoc
// @Summary      List the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.PostResponse
// @Router       /posts/me [get]
func (h *PostHandler) GetMyPosts(c *gin.Context) {
	responses, err := h.postUseCase.GetUserPosts(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Overwrite the post content. New images, when supplied, fully replace the existing media set.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        content formData string false "New text content"
// @Param        images formData file false "Replacement image files (image/*)"
// @Success      200  {object}  entity.PostResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	content := c.PostForm("content")

	images, _, err := parseMediaForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.postUseCase.UpdatePost(c.Request.Context(), c.Param("id"), userID, content, images)
	if err != nil {
		h.logger.Error("Failed to update post %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Delete a post and every attached media blob. Owner or admin only.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	if err := h.postUseCase.DeletePost(c.Request.Context(), c.Param("id"), userID, isAdmin); err != nil {
		h.logger.Error("Failed to delete post %s: %v", c.Param("id"), err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// parseMediaForm reads the optional images[] and video parts of a multipart
// request into MediaUpload values. A request without a multipart body yields
// no media.
func parseMediaForm(c *gin.Context) ([]*entity.MediaUpload, *entity.MediaUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil
	}

	var images []*entity.MediaUpload
	for _, header := range form.File["images"] {
		upload, err := readUpload(header)
		if err != nil {
			return nil, nil, err
		}
		images = append(images, upload)
	}

	var video *entity.MediaUpload
	if headers := form.File["video"]; len(headers) > 0 {
		video, err = readUpload(headers[0])
		if err != nil {
			return nil, nil, err
		}
	}

	return images, video, nil
}

func readUpload(header *multipart.FileHeader) (*entity.MediaUpload, error) {
	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &entity.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
