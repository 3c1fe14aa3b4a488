package controller

import (
	"errors"

	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
	PageService    *service.StaticPageService
}

func NewCatalogController(catalogService *service.CatalogService, pageService *service.StaticPageService) *CatalogController {
	return &CatalogController{
		CatalogService: catalogService,
		PageService:    pageService,
	}
}

// ListCourses godoc
// @Summary Public course catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail with chapters and exercises
// @Description When the caller has a valid session, completed exercise ids are
// @Description included so the UI can mark progress.
// @Tags catalog
// @Produce json
// @Param slug path string true "course slug"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{slug} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	userID := ""
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	detail, err := c.CatalogService.GetCourseBySlug(ctx.Param("slug"), userID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, detail)
}

// GetStaticPage godoc
// @Summary CMS-managed markdown page by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "page slug"
// @Success 200 {object} util.Response{data=model.StaticPage}
// @Failure 404 {object} util.Response
// @Router /api/pages/{slug} [get]
func (c *CatalogController) GetStaticPage(ctx *gin.Context) {
	page, err := c.PageService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrPageNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, page)
}
