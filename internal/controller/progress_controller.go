package controller

import (
	"errors"

	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	UserID       string `json:"userId" binding:"required"`
	ExerciseSlug string `json:"exerciseSlug" binding:"required"`
}

// UpdateProgress godoc
// @Summary Record an exercise completion and credit its XP
// @Description The session user must match the userId in the body.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body UpdateProgressRequest true "completion payload"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/update [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	// A user can only record progress for themselves.
	if claims.UserID != req.UserID {
		util.Forbidden(ctx)
		return
	}

	result, err := c.ProgressService.RecordCompletion(req.UserID, req.ExerciseSlug)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx, "Exercise with slug '"+req.ExerciseSlug+"' not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"updatedUserProgress": gin.H{
			"exerciseId":  result.ExerciseID,
			"status":      result.Status,
			"completedAt": result.CompletedAt,
		},
		"total_xp": result.TotalXP,
	})
}
