package public

import "github.com/lumina-blog/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：该处理器用于博客前台与游客侧 API。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
