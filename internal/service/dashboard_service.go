package service

import (
	"context"
	"time"

	"github.com/lumina-blog/internal/cache"
	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/repository"
)

const (
	dashboardCacheKey  = "dashboard:overview"
	dashboardCacheTTL  = 5 * time.Minute
	dashboardRecentMax = 5
)

// DashboardService 仪表盘服务
// 说明：聚合后台首页统计数据，结果写入缓存供后续请求复用。
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardOverviewResponse 仪表盘总览响应
type DashboardOverviewResponse struct {
	Articles       DashboardArticleStats `json:"articles"`
	ViewsTotal     int64                 `json:"views_total"`
	Categories     int64                 `json:"categories"`
	Tags           int64                 `json:"tags"`
	RecentArticles []models.Article      `json:"recent_articles"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

// DashboardArticleStats 文章统计
type DashboardArticleStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Private   int64 `json:"private"`
}

// GetOverview 获取总览统计，优先读缓存
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardOverviewResponse, error) {
	var cached DashboardOverviewResponse
	hit, err := cache.GetJSON(ctx, dashboardCacheKey, &cached)
	if err == nil && hit {
		return &cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh 重新聚合统计并写入缓存
func (s *DashboardService) Refresh(ctx context.Context) (*DashboardOverviewResponse, error) {
	row, err := s.repo.GetOverview()
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.GetRecentArticles(dashboardRecentMax)
	if err != nil {
		return nil, err
	}

	response := DashboardOverviewResponse{
		Articles: DashboardArticleStats{
			Total:     row.ArticlesTotal,
			Published: row.ArticlesPublished,
			Draft:     row.ArticlesDraft,
			Private:   row.ArticlesPrivate,
		},
		ViewsTotal:     row.ViewsTotal,
		Categories:     row.CategoriesTotal,
		Tags:           row.TagsTotal,
		RecentArticles: recent,
		GeneratedAt:    time.Now(),
	}
	_ = cache.SetJSON(ctx, dashboardCacheKey, response, dashboardCacheTTL)
	return &response, nil
}
