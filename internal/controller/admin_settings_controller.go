package controller

import (
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminSettingsController struct {
	SettingService *service.SettingService
}

func NewAdminSettingsController(settingService *service.SettingService) *AdminSettingsController {
	return &AdminSettingsController{SettingService: settingService}
}

func (c *AdminSettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.SettingService.GetAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

func (c *AdminSettingsController) UpdateSettings(ctx *gin.Context) {
	var req map[string]string
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(req) == 0 {
		util.BadRequest(ctx, "no settings provided")
		return
	}

	if err := c.SettingService.UpdateAll(ctx.Request.Context(), req); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	settings, err := c.SettingService.GetAll(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}
