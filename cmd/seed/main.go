package main

import (
	"fmt"

	"github.com/lumina-blog/internal/config"
	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/logger"
	"github.com/lumina-blog/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "后端开发", Description: "Go、数据库与服务端架构相关文章"},
		{Name: "工程实践", Description: "CI/CD、部署、可观测性与团队协作"},
		{Name: "随笔", Description: "技术之外的思考与记录"},
	}

	categoryIDs := map[string]uint{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
			categoryIDs[cat.Name] = existing.ID
		}
	}

	// 添加标签
	tagNames := []string{"Go", "PostgreSQL", "Redis", "Gin", "性能优化", "部署"}
	tagIDs := map[string]uint{}
	for _, name := range tagNames {
		var existing models.Tag
		if err := models.DB.Where("name = ?", name).First(&existing).Error; err != nil {
			tag := models.Tag{Name: name}
			if err := models.DB.Create(&tag).Error; err != nil {
				stdLog.Printf("Failed to create tag %s: %v", name, err)
				continue
			}
			stdLog.Printf("Created tag: %s", name)
			tagIDs[name] = tag.ID
		} else {
			stdLog.Printf("Tag already exists: %s", name)
			tagIDs[name] = existing.ID
		}
	}

	backendID := categoryIDs["后端开发"]
	engineeringID := categoryIDs["工程实践"]
	essayID := categoryIDs["随笔"]

	// 添加文章
	articles := []struct {
		Article models.Article
		Tags    []string
	}{
		{
			Article: models.Article{
				Title:      "用 Gin 和 GORM 搭建博客后端",
				Summary:    "从零开始搭建一个带分类、标签与访问控制的博客 API。",
				Content:    "本文介绍如何用 Gin 处理路由与中间件，用 GORM 管理文章、分类与标签的关联关系。\n\n核心要点：\n1. 仓储层封装查询与分页\n2. 服务层承载业务校验\n3. 处理器只做参数绑定与错误映射\n\n完整示例见正文。",
				CategoryID: &backendID,
				IsPublic:   true,
				IsTop:      true,
				Status:     constants.ArticleStatusPublished,
			},
			Tags: []string{"Go", "Gin"},
		},
		{
			Article: models.Article{
				Title:      "PostgreSQL 分页查询的正确姿势",
				Summary:    "COUNT 与 OFFSET 的取舍，以及稳定排序为什么需要 id 兜底。",
				Content:    "分页列表在排序字段出现重复值时会出现翻页抖动，解决办法是在排序末尾追加主键作为决胜字段。\n\n本文还对比了 OFFSET 分页与游标分页在不同数据量下的表现。",
				CategoryID: &backendID,
				IsPublic:   true,
				Status:     constants.ArticleStatusPublished,
			},
			Tags: []string{"PostgreSQL", "性能优化"},
		},
		{
			Article: models.Article{
				Title:      "用 Redis 给只读接口加一层缓存",
				Summary:    "短 TTL 缓存加主动失效，足够覆盖大部分读多写少的场景。",
				Content:    "分类和标签列表变化频率很低，直接缓存序列化后的响应体，写操作时删除对应键即可。\n\n注意缓存键加统一前缀，便于按实例隔离。",
				CategoryID: &engineeringID,
				IsPublic:   true,
				Status:     constants.ArticleStatusPublished,
			},
			Tags: []string{"Redis", "性能优化"},
		},
		{
			Article: models.Article{
				Title:      "博客部署记录",
				Summary:    "一台小服务器跑完 API、Worker 和反向代理。",
				Content:    "记录一次从裸机到上线的完整部署流程：systemd 托管进程、Caddy 做 TLS、每日备份 sqlite 文件。",
				CategoryID: &engineeringID,
				IsPublic:   true,
				Status:     constants.ArticleStatusPublished,
			},
			Tags: []string{"部署"},
		},
		{
			Article: models.Article{
				Title:      "下半年写作计划",
				Summary:    "列一下想写但还没写的主题。",
				Content:    "草稿：\n- Go 泛型在仓储层的应用\n- asynq 任务重试策略\n- 博客前端重构\n\n想到再补充。",
				CategoryID: &essayID,
				IsPublic:   true,
				Status:     constants.ArticleStatusDraft,
			},
			Tags: []string{"Go"},
		},
		{
			Article: models.Article{
				Title:    "一些仅自己可见的笔记",
				Summary:  "私有文章示例。",
				Content:  "这篇文章 is_public 为 false，匿名访客在列表和详情里都看不到它。",
				IsPublic: false,
				Status:   constants.ArticleStatusPublished,
			},
			Tags: nil,
		},
	}

	for _, item := range articles {
		art := item.Article
		var existing models.Article
		if err := models.DB.Where("title = ?", art.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&art).Error; err != nil {
				stdLog.Printf("Failed to create article %s: %v", art.Title, err)
				continue
			}
			stdLog.Printf("Created article: %s", art.Title)
		} else {
			stdLog.Printf("Article already exists: %s", art.Title)
			art = existing
		}

		// 补齐标签关联
		for _, tagName := range item.Tags {
			tagID, ok := tagIDs[tagName]
			if !ok {
				continue
			}
			var link models.ArticleTag
			if err := models.DB.Where("article_id = ? AND tag_id = ?", art.ID, tagID).First(&link).Error; err != nil {
				link = models.ArticleTag{ArticleID: art.ID, TagID: tagID}
				if err := models.DB.Create(&link).Error; err != nil {
					stdLog.Printf("Failed to link article %s with tag %s: %v", art.Title, tagName, err)
				}
			}
		}
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 6 Tags")
	fmt.Println("- 6 Articles (4 published + 1 draft + 1 private)")
}
