package controller

import (
	"errors"

	"codedex_backend/internal/model"
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminPageController struct {
	PageService *service.StaticPageService
}

func NewAdminPageController(pageService *service.StaticPageService) *AdminPageController {
	return &AdminPageController{PageService: pageService}
}

type StaticPageRequest struct {
	Slug    string `json:"slug" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (c *AdminPageController) ListPages(ctx *gin.Context) {
	pages, err := c.PageService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pages)
}

func (c *AdminPageController) CreatePage(ctx *gin.Context) {
	var req StaticPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page := &model.StaticPage{
		Slug:    req.Slug,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := c.PageService.Create(page); err != nil {
		if errors.Is(err, util.ErrSlugTaken) {
			util.Conflict(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, page)
}

func (c *AdminPageController) UpdatePage(ctx *gin.Context) {
	var req StaticPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	page, err := c.PageService.Update(ctx.Param("slug"), &model.StaticPage{
		Title:   req.Title,
		Content: req.Content,
	})
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

func (c *AdminPageController) DeletePage(ctx *gin.Context) {
	if err := c.PageService.Delete(ctx.Param("slug")); err != nil {
		if errors.Is(err, util.ErrPageNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
