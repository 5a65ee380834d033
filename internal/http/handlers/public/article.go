package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lumina-blog/internal/http/handlers/shared"
	"github.com/lumina-blog/internal/http/response"
	"github.com/lumina-blog/internal/service"

	"github.com/gin-gonic/gin"
)

// GetArticles 获取文章列表
// 匿名访客仅能看到公开且已发布的文章，状态与公开性筛选仅对管理员生效。
func (h *Handler) GetArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	page, pageSize = normalizePagination(page, pageSize)

	input := service.ArticleListInput{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: parseUintQuery(c, "category_id"),
		TagID:      parseUintQuery(c, "tag_id"),
		Search:     strings.TrimSpace(c.Query("search")),
		Status:     strings.TrimSpace(c.Query("status")),
		IsPublic:   parseBoolQuery(c, "is_public"),
	}

	articles, total, err := h.ArticleService.List(input, shared.GetVisibility(c))
	if err != nil {
		respondError(c, response.CodeInternal, "获取文章列表失败", err)
		return
	}

	response.SuccessWithPage(c, articles, response.NewPagination(page, pageSize, total))
}

// GetArticle 获取文章详情，访问成功后浏览量加一
func (h *Handler) GetArticle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, response.CodeBadRequest, "无效的文章 ID", nil)
		return
	}

	article, err := h.ArticleService.Get(id, shared.GetVisibility(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "文章不存在", nil)
		case errors.Is(err, service.ErrForbidden):
			respondError(c, response.CodeForbidden, "无权访问该文章", nil)
		default:
			respondError(c, response.CodeInternal, "获取文章失败", err)
		}
		return
	}

	response.Success(c, article)
}
