package controller

import (
	"errors"

	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminExerciseController struct {
	ContentService *service.ContentService
}

func NewAdminExerciseController(contentService *service.ContentService) *AdminExerciseController {
	return &AdminExerciseController{ContentService: contentService}
}

type ExerciseRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Order          int    `json:"order"`
	Content        string `json:"content"`
	InitialCode    string `json:"initialCode"`
	ExpectedOutput string `json:"expectedOutput"`
	// XPValue stays a pointer: absent means "no XP configured", which readers
	// treat as zero.
	XPValue *int `json:"xpValue" binding:"omitempty,min=0"`
}

func (c *AdminExerciseController) CreateExercise(ctx *gin.Context) {
	var req ExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercise := &model.Exercise{
		ChapterID:      ctx.Param("chapterId"),
		Title:          req.Title,
		Slug:           req.Slug,
		Order:          req.Order,
		Content:        req.Content,
		InitialCode:    req.InitialCode,
		ExpectedOutput: req.ExpectedOutput,
		XPValue:        req.XPValue,
	}

	if err := c.ContentService.CreateExercise(ctx.Request.Context(), exercise); err != nil {
		switch {
		case errors.Is(err, util.ErrChapterNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSlugTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, exercise)
}

func (c *AdminExerciseController) ListExercises(ctx *gin.Context) {
	exercises, err := c.ContentService.ListExercises(ctx.Param("chapterId"))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, exercises)
}

func (c *AdminExerciseController) UpdateExercise(ctx *gin.Context) {
	var req ExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exercise, err := c.ContentService.UpdateExercise(ctx.Request.Context(), ctx.Param("exerciseId"), &model.Exercise{
		Title:          req.Title,
		Slug:           req.Slug,
		Order:          req.Order,
		Content:        req.Content,
		InitialCode:    req.InitialCode,
		ExpectedOutput: req.ExpectedOutput,
		XPValue:        req.XPValue,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExerciseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSlugTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, exercise)
}

func (c *AdminExerciseController) DeleteExercise(ctx *gin.Context) {
	if err := c.ContentService.DeleteExercise(ctx.Request.Context(), ctx.Param("exerciseId")); err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
