package admin

import (
	"strconv"

	"github.com/lumina-blog/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard 获取后台仪表盘统计
func (h *Handler) GetDashboard(c *gin.Context) {
	forceRefresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

	ctx := c.Request.Context()
	var (
		overview interface{}
		err      error
	)
	if forceRefresh {
		overview, err = h.DashboardService.Refresh(ctx)
	} else {
		overview, err = h.DashboardService.GetOverview(ctx)
	}
	if err != nil {
		respondError(c, response.CodeInternal, "获取仪表盘数据失败", err)
		return
	}
	response.Success(c, overview)
}
