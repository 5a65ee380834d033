package service

import (
	"errors"
	"testing"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.SetupJoinTable(&models.Article{}, "Tags", &models.ArticleTag{}); err != nil {
		t.Fatalf("setup join table failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Category{}, &models.Tag{}, &models.Article{}, &models.ArticleTag{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	// 共享内存库在同包测试间复用，先清空再开始
	for _, table := range []string{"article_tags", "articles", "tags", "categories", "admins"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean table %s failed: %v", table, err)
		}
	}
	return db
}

func newArticleService(t *testing.T) (*ArticleService, *gorm.DB) {
	t.Helper()
	db := setupServiceTest(t)
	svc := NewArticleService(
		repository.NewArticleRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewTagRepository(db),
	)
	return svc, db
}

func mustCreateArticle(t *testing.T, svc *ArticleService, input CreateArticleInput) *models.Article {
	t.Helper()
	article, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	return article
}

func TestArticleGetVisibility(t *testing.T) {
	svc, _ := newArticleService(t)

	published := mustCreateArticle(t, svc, CreateArticleInput{
		Title:   "公开文章",
		Content: "正文",
		Status:  constants.ArticleStatusPublished,
	})
	draft := mustCreateArticle(t, svc, CreateArticleInput{
		Title:   "草稿文章",
		Content: "正文",
		Status:  constants.ArticleStatusDraft,
	})
	hidden := false
	private := mustCreateArticle(t, svc, CreateArticleInput{
		Title:    "私有文章",
		Content:  "正文",
		Status:   constants.ArticleStatusPublished,
		IsPublic: &hidden,
	})

	if _, err := svc.Get(published.ID, VisibilityPublic); err != nil {
		t.Fatalf("public visitor should read published article: %v", err)
	}
	if _, err := svc.Get(draft.ID, VisibilityPublic); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for draft, got %v", err)
	}
	if _, err := svc.Get(private.ID, VisibilityPublic); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for private article, got %v", err)
	}
	if _, err := svc.Get(draft.ID, VisibilityOperator); err != nil {
		t.Fatalf("operator should read draft: %v", err)
	}
	if _, err := svc.Get(99999, VisibilityPublic); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestArticleGetIncrementsViewCount(t *testing.T) {
	svc, _ := newArticleService(t)

	article := mustCreateArticle(t, svc, CreateArticleInput{
		Title:   "计数文章",
		Content: "正文",
		Status:  constants.ArticleStatusPublished,
	})

	first, err := svc.Get(article.ID, VisibilityPublic)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if first.ViewCount != 1 {
		t.Fatalf("expected view count 1 after first read, got %d", first.ViewCount)
	}

	second, err := svc.Get(article.ID, VisibilityOperator)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if second.ViewCount != 2 {
		t.Fatalf("expected view count 2 after second read, got %d", second.ViewCount)
	}
}

func TestArticleListForcesPublicForVisitor(t *testing.T) {
	svc, _ := newArticleService(t)

	mustCreateArticle(t, svc, CreateArticleInput{
		Title:   "已发布",
		Content: "正文",
		Status:  constants.ArticleStatusPublished,
	})
	mustCreateArticle(t, svc, CreateArticleInput{
		Title:   "草稿",
		Content: "正文",
		Status:  constants.ArticleStatusDraft,
	})

	// 匿名访客显式传草稿过滤也只能拿到已发布内容
	rows, total, err := svc.List(ArticleListInput{Page: 1, PageSize: 10, Status: constants.ArticleStatusDraft}, VisibilityPublic)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("expected 1 visible article, got total=%d rows=%d", total, len(rows))
	}
	if rows[0].Title != "已发布" {
		t.Fatalf("unexpected article in visitor list: %s", rows[0].Title)
	}

	rows, total, err = svc.List(ArticleListInput{Page: 1, PageSize: 10, Status: constants.ArticleStatusDraft}, VisibilityOperator)
	if err != nil {
		t.Fatalf("operator list failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Title != "草稿" {
		t.Fatalf("expected draft-only operator list, got total=%d", total)
	}
}

func TestArticleCreateValidation(t *testing.T) {
	svc, _ := newArticleService(t)

	if _, err := svc.Create(CreateArticleInput{Title: "   ", Content: "正文"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(CreateArticleInput{Title: "标题", Content: "  "}); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
	if _, err := svc.Create(CreateArticleInput{Title: "标题", Content: "正文", Status: "archived"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	longTitle := make([]rune, constants.ArticleTitleMaxLength+1)
	for i := range longTitle {
		longTitle[i] = '长'
	}
	if _, err := svc.Create(CreateArticleInput{Title: string(longTitle), Content: "正文"}); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	missingCategory := uint(4004)
	if _, err := svc.Create(CreateArticleInput{Title: "标题", Content: "正文", CategoryID: &missingCategory}); !errors.Is(err, ErrCategoryInvalid) {
		t.Fatalf("expected ErrCategoryInvalid, got %v", err)
	}
	if _, err := svc.Create(CreateArticleInput{Title: "标题", Content: "正文", TagIDs: []uint{4005}}); !errors.Is(err, ErrTagInvalid) {
		t.Fatalf("expected ErrTagInvalid, got %v", err)
	}
}

func TestArticleCreateDefaults(t *testing.T) {
	svc, _ := newArticleService(t)

	article := mustCreateArticle(t, svc, CreateArticleInput{Title: "默认值", Content: "正文"})
	if article.Status != constants.ArticleStatusDraft {
		t.Fatalf("expected default status draft, got %s", article.Status)
	}
	if !article.IsPublic {
		t.Fatal("expected default is_public true")
	}
}

func TestArticleUpdatePartialAndTags(t *testing.T) {
	svc, db := newArticleService(t)

	var category models.Category
	category.Name = "分类A"
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	tagA := models.Tag{Name: "标签A"}
	tagB := models.Tag{Name: "标签B"}
	if err := db.Create(&tagA).Error; err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	if err := db.Create(&tagB).Error; err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	article := mustCreateArticle(t, svc, CreateArticleInput{
		Title:      "原标题",
		Summary:    "原摘要",
		Content:    "原正文",
		CategoryID: &category.ID,
		TagIDs:     []uint{tagA.ID},
	})
	if article.Category == nil || article.Category.ID != category.ID {
		t.Fatal("expected category preloaded after create")
	}
	if len(article.Tags) != 1 || article.Tags[0].ID != tagA.ID {
		t.Fatalf("expected single tag A after create, got %d tags", len(article.Tags))
	}

	// 只改标题，其余字段保持不变
	newTitle := "新标题"
	updated, err := svc.Update(article.ID, UpdateArticleInput{Title: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "新标题" || updated.Summary != "原摘要" || updated.Content != "原正文" {
		t.Fatalf("partial update touched unexpected fields: %+v", updated)
	}
	if len(updated.Tags) != 1 {
		t.Fatalf("tags should be untouched when TagIDs absent, got %d", len(updated.Tags))
	}

	// TagIDs 出现时整体替换
	newTags := []uint{tagB.ID, tagB.ID}
	updated, err = svc.Update(article.ID, UpdateArticleInput{TagIDs: &newTags})
	if err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != tagB.ID {
		t.Fatalf("expected tags replaced with deduped B, got %+v", updated.Tags)
	}

	// 空数组表示清空标签
	empty := []uint{}
	updated, err = svc.Update(article.ID, UpdateArticleInput{TagIDs: &empty})
	if err != nil {
		t.Fatalf("clear tags failed: %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Fatalf("expected no tags after clear, got %d", len(updated.Tags))
	}

	// 显式解除分类
	updated, err = svc.Update(article.ID, UpdateArticleInput{ClearCategory: true})
	if err != nil {
		t.Fatalf("clear category failed: %v", err)
	}
	if updated.CategoryID != nil {
		t.Fatalf("expected category cleared, got %v", *updated.CategoryID)
	}

	badTags := []uint{99999}
	if _, err := svc.Update(article.ID, UpdateArticleInput{TagIDs: &badTags}); !errors.Is(err, ErrTagInvalid) {
		t.Fatalf("expected ErrTagInvalid, got %v", err)
	}
	if _, err := svc.Update(99999, UpdateArticleInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestArticleDelete(t *testing.T) {
	svc, _ := newArticleService(t)

	article := mustCreateArticle(t, svc, CreateArticleInput{Title: "待删除", Content: "正文"})
	if err := svc.Delete(article.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(article.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
