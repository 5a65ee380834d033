package admin

import (
	"strconv"
	"strings"

	"github.com/lumina-blog/internal/http/handlers/shared"
	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/queue"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}

// parseUintParam 解析路径中的 uint 参数
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// enqueueDashboardRefresh 内容变更后异步刷新仪表盘统计
func (h *Handler) enqueueDashboardRefresh(reason string) {
	if h.QueueClient == nil {
		return
	}
	err := h.QueueClient.EnqueueDashboardRefresh(queue.DashboardRefreshPayload{Reason: reason})
	if err != nil {
		logger.Warnw("admin_enqueue_dashboard_refresh_failed", "reason", reason, "error", err)
	}
}
