package http

import (
	"net/http"
	"time"

	"skillsphere/internal/usecase"
	"skillsphere/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planUseCase usecase.PlanUseCase
	logger      *logger.Logger
}

func NewPlanHandler(planUseCase usecase.PlanUseCase, log *logger.Logger) *PlanHandler {
	return &PlanHandler{
		planUseCase: planUseCase,
		logger:      log,
	}
}

type PlanRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	Deadline    *time.Time `json:"deadline"`
}

// CreatePlan godoc
// @Summary      Create a learning plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PlanRequest true "Plan data"
// @Success      201  {object}  entity.LearningPlan
// @Failure      400  {object}  map[string]string
// @Router       /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planUseCase.CreatePlan(c.Request.Context(), c.GetString("user_id"), req.Title, req.Description, req.Topics, req.Deadline)
	if err != nil {
		h.logger.Error("Failed to create plan: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlan godoc
// @Summary      Get plan by ID
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan ID"
// @Success      200  {object}  entity.LearningPlan
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.planUseCase.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListPlans godoc
// @Summary      List all plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.LearningPlan
// @Router       /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.planUseCase.GetAllPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetUserPlans godoc
// @Summary      List plans by user
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {array}  entity.LearningPlan
// @Router       /plans/user/{id} [get]
func (h *PlanHandler) GetUserPlans(c *gin.Context) {
	plans, err := h.planUseCase.GetUserPlans(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetMyPlans godoc
// @Summary      List plans of the authenticated user
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.LearningPlan
// @Router       /plans/me [get]
func (h *PlanHandler) GetMyPlans(c *gin.Context) {
	plans, err := h.planUseCase.GetUserPlans(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdatePlan godoc
// @Summary      Update a plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan ID"
// @Param        request body PlanRequest true "New plan data"
// @Success      200  {object}  entity.LearningPlan
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planUseCase.UpdatePlan(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Title, req.Description, req.Topics, req.Deadline)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan godoc
// @Summary      Delete a plan
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Plan ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planUseCase.DeletePlan(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
