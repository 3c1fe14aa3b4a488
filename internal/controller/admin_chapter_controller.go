package controller

import (
	"errors"

	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminChapterController struct {
	ContentService *service.ContentService
}

func NewAdminChapterController(contentService *service.ContentService) *AdminChapterController {
	return &AdminChapterController{ContentService: contentService}
}

type ChapterRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Order int    `json:"order"`
}

func (c *AdminChapterController) CreateChapter(ctx *gin.Context) {
	var req ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter := &model.Chapter{
		CourseID: ctx.Param("courseId"),
		Title:    req.Title,
		Slug:     req.Slug,
		Order:    req.Order,
	}

	if err := c.ContentService.CreateChapter(ctx.Request.Context(), chapter); err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrSlugTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, chapter)
}

func (c *AdminChapterController) ListChapters(ctx *gin.Context) {
	chapters, err := c.ContentService.ListChapters(ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapters)
}

func (c *AdminChapterController) UpdateChapter(ctx *gin.Context) {
	var req ChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ContentService.UpdateChapter(ctx.Request.Context(), ctx.Param("chapterId"), &model.Chapter{
		Title: req.Title,
		Slug:  req.Slug,
		Order: req.Order,
	})
	if err != nil {
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

	util.Success(ctx, chapter)
}

func (c *AdminChapterController) DeleteChapter(ctx *gin.Context) {
	if err := c.ContentService.DeleteChapter(ctx.Request.Context(), ctx.Param("chapterId")); err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
