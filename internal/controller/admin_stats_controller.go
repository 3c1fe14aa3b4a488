package controller

import (
	"codedex_backend/internal/service"
	"codedex_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminStatsController struct {
	StatsService *service.StatsService
}

func NewAdminStatsController(statsService *service.StatsService) *AdminStatsController {
	return &AdminStatsController{StatsService: statsService}
}

// GetStats godoc
// @Summary Platform totals for the admin dashboard
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PlatformStats}
// @Router /api/admin/stats [get]
func (c *AdminStatsController) GetStats(ctx *gin.Context) {
	stats, err := c.StatsService.GetPlatformStats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
