package controller

import (
	"errors"
	"strconv"

	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminCourseController struct {
	ContentService *service.ContentService
}

func NewAdminCourseController(contentService *service.ContentService) *AdminCourseController {
	return &AdminCourseController{ContentService: contentService}
}

// pagination reads skip/take query params, clamped the way the admin UI
// expects (take between 1 and 100).
func pagination(ctx *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	take, _ := strconv.Atoi(ctx.DefaultQuery("take", "10"))
	if skip < 0 {
		skip = 0
	}
	if take < 1 {
		take = 1
	}
	if take > 100 {
		take = 100
	}
	return skip, take
}

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CourseRequest true "course payload"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 409 {object} util.Response
// @Router /api/admin/courses [post]
func (c *AdminCourseController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := c.ContentService.CreateCourse(ctx.Request.Context(), course); err != nil {
		switch {
		case errors.Is(err, util.ErrSlugTaken), errors.Is(err, util.ErrTitleTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, course)
}

// ListCourses godoc
// @Summary Paginated course list for the admin UI
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/courses [get]
func (c *AdminCourseController) ListCourses(ctx *gin.Context) {
	skip, take := pagination(ctx)

	courses, total, err := c.ContentService.ListCourses(skip, take)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  courses,
		Total: total,
		Skip:  skip,
		Take:  take,
	})
}

func (c *AdminCourseController) GetCourse(ctx *gin.Context) {
	course, err := c.ContentService.GetCourse(ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

func (c *AdminCourseController) UpdateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ContentService.UpdateCourse(ctx.Request.Context(), ctx.Param("courseId"), &model.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
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

	util.Success(ctx, course)
}

func (c *AdminCourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.ContentService.DeleteCourse(ctx.Request.Context(), ctx.Param("courseId")); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// UploadCourseImage godoc
// @Summary Upload a course cover image
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/uploads/course-image [post]
func (c *AdminCourseController) UploadCourseImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	url, err := c.ContentService.UploadCourseImage(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
