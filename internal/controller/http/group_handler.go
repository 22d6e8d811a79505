package http

import (
	"net/http"

	"skillsphere/internal/entity"
	"skillsphere/internal/usecase"
	"skillsphere/pkg/logger"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       *logger.Logger
}

func NewGroupHandler(groupUseCase usecase.GroupUseCase, log *logger.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       log,
	}
}

type UpdateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateGroup godoc
// @Summary      Create a group
// @Description  Create a group with a unique name and an optional cover image
// @Tags         groups
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name formData string true "Group name"
// @Param        description formData string false "Group description"
// @Param        cover formData file false "Cover image (image/*)"
// @Success      201  {object}  entity.Group
// @Failure      400  {object}  map[string]string
// @Router       /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID := c.GetString("user_id")
	name := c.PostForm("name")
	description := c.PostForm("description")

	var cover *entity.MediaUpload
	if header, err := c.FormFile("cover"); err == nil {
		upload, err := readUpload(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cover = upload
	}

	group, err := h.groupUseCase.CreateGroup(c.Request.Context(), name, description, userID, cover)
	if err != nil {
		h.logger.Error("Failed to create group: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// UpdateGroup godoc
// @Summary      Update a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Group ID"
// @Param        request body UpdateGroupRequest true "New name and description"
// @Success      200  {object}  entity.Group
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /groups/{id} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupUseCase.UpdateGroup(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup godoc
// @Summary      Delete a group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Group ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	if err := h.groupUseCase.DeleteGroup(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// ListGroups godoc
// @Summary      List all groups
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Group
// @Router       /groups [get]
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupUseCase.GetAllGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetMyGroups godoc
// @Summary      List the caller's groups
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Group
// @Router       /groups/me [get]
func (h *GroupHandler) GetMyGroups(c *gin.Context) {
	groups, err := h.groupUseCase.GetUserGroups(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}
