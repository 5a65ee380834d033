package shared

import (
	"github.com/lumina-blog/internal/http/response"
	"github.com/lumina-blog/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyAdminID 上下文中管理员 ID 的键
	ContextKeyAdminID = "admin_id"
	// ContextKeyVisibility 上下文中可见级别的键
	ContextKeyVisibility = "visibility"
)

// GetAdminID 从上下文读取管理员 ID，缺失时返回未认证响应。
func GetAdminID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyAdminID)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "未登录或登录已过期", nil)
		return 0, false
	}
	id, ok := value.(uint)
	if !ok {
		RespondError(c, response.CodeInternal, "上下文数据异常", nil)
		return 0, false
	}
	return id, true
}

// GetVisibility 从上下文读取可见级别，默认按匿名访客处理。
func GetVisibility(c *gin.Context) service.Visibility {
	if c == nil {
		return service.VisibilityPublic
	}
	if value, exists := c.Get(ContextKeyVisibility); exists {
		if vis, ok := value.(service.Visibility); ok {
			return vis
		}
	}
	return service.VisibilityPublic
}
