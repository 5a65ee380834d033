package repository

import (
	"sync"
	"testing"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTest(t *testing.T) *gorm.DB {
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

func createTestArticle(t *testing.T, repo *GormArticleRepository, title string, isPublic bool, status string, isTop bool) *models.Article {
	t.Helper()
	article := &models.Article{
		Title:    title,
		Content:  "内容 " + title,
		IsPublic: isPublic,
		IsTop:    isTop,
		Status:   status,
	}
	if err := repo.Create(article); err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	return article
}

func TestArticleListPublicOnlyNarrowing(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	createTestArticle(t, repo, "published public", true, constants.ArticleStatusPublished, false)
	createTestArticle(t, repo, "draft public", true, constants.ArticleStatusDraft, false)
	createTestArticle(t, repo, "published private", false, constants.ArticleStatusPublished, false)

	articles, total, err := repo.List(ArticleListFilter{Page: 1, PageSize: 10, PublicOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total want 1 got %d", total)
	}
	if len(articles) != 1 || articles[0].Title != "published public" {
		t.Fatalf("unexpected rows: %+v", articles)
	}

	// 受限模式下即便显式传入草稿或私有过滤也不放行
	draft := constants.ArticleStatusDraft
	isPublic := false
	articles, total, err = repo.List(ArticleListFilter{
		Page: 1, PageSize: 10, PublicOnly: true, Status: draft, IsPublic: &isPublic,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(articles) != 1 {
		t.Fatalf("narrowed list want 1 row got total=%d rows=%d", total, len(articles))
	}
}

func TestArticleListOrderingTopFirst(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	first := createTestArticle(t, repo, "old", true, constants.ArticleStatusPublished, false)
	second := createTestArticle(t, repo, "new", true, constants.ArticleStatusPublished, false)
	pinned := createTestArticle(t, repo, "pinned", true, constants.ArticleStatusPublished, true)

	articles, _, err := repo.List(ArticleListFilter{Page: 1, PageSize: 10, PublicOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("rows want 3 got %d", len(articles))
	}
	if articles[0].ID != pinned.ID {
		t.Fatalf("pinned article should rank first, got id %d", articles[0].ID)
	}
	// 创建时间相同时按 ID 倒序保证稳定
	if articles[1].ID != second.ID || articles[2].ID != first.ID {
		t.Fatalf("order want [%d %d %d] got [%d %d %d]",
			pinned.ID, second.ID, first.ID, articles[0].ID, articles[1].ID, articles[2].ID)
	}
}

func TestArticleListPaginationOutOfRange(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	for i := 0; i < 3; i++ {
		createTestArticle(t, repo, "article", true, constants.ArticleStatusPublished, false)
	}

	articles, total, err := repo.List(ArticleListFilter{Page: 9, PageSize: 10, PublicOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want 3 got %d", total)
	}
	if len(articles) != 0 {
		t.Fatalf("out of range page want empty rows got %d", len(articles))
	}
}

func TestArticleListFilterByTagAndCategory(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	category := &models.Category{Name: "工程"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	tag := &models.Tag{Name: "golang"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	tagged := createTestArticle(t, repo, "tagged", true, constants.ArticleStatusPublished, false)
	tagged.CategoryID = &category.ID
	if err := repo.Update(tagged); err != nil {
		t.Fatalf("update article failed: %v", err)
	}
	if err := repo.ReplaceTags(tagged.ID, []uint{tag.ID}); err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}
	createTestArticle(t, repo, "plain", true, constants.ArticleStatusPublished, false)

	articles, total, err := repo.List(ArticleListFilter{Page: 1, PageSize: 10, TagID: &tag.ID})
	if err != nil {
		t.Fatalf("list by tag failed: %v", err)
	}
	if total != 1 || len(articles) != 1 || articles[0].ID != tagged.ID {
		t.Fatalf("tag filter want only tagged article, got total=%d", total)
	}
	if len(articles[0].Tags) != 1 || articles[0].Tags[0].Name != "golang" {
		t.Fatalf("preload tags failed: %+v", articles[0].Tags)
	}

	articles, total, err = repo.List(ArticleListFilter{Page: 1, PageSize: 10, CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if total != 1 || len(articles) != 1 || articles[0].ID != tagged.ID {
		t.Fatalf("category filter want only tagged article, got total=%d", total)
	}
}

func TestArticleListSearch(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	createTestArticle(t, repo, "Go 并发模式", true, constants.ArticleStatusPublished, false)
	createTestArticle(t, repo, "其他主题", true, constants.ArticleStatusPublished, false)

	articles, total, err := repo.List(ArticleListFilter{Page: 1, PageSize: 10, Search: "并发"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(articles) != 1 {
		t.Fatalf("search want 1 row got total=%d rows=%d", total, len(articles))
	}
}

func TestArticleIncrementViewCount(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	article := createTestArticle(t, repo, "counted", true, constants.ArticleStatusPublished, false)
	for i := 0; i < 3; i++ {
		if err := repo.IncrementViewCount(article.ID); err != nil {
			t.Fatalf("increment view count failed: %v", err)
		}
	}

	got, err := repo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if got == nil {
		t.Fatal("article not found after increment")
	}
	if got.ViewCount != 3 {
		t.Fatalf("view count want 3 got %d", got.ViewCount)
	}
}

func TestArticleIncrementViewCountConcurrent(t *testing.T) {
	db := setupRepositoryTest(t)
	// sqlite 共享缓存下并发写会触发表锁，连接层收敛为单写者
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	repo := NewArticleRepository(db)

	article := createTestArticle(t, repo, "counted concurrent", true, constants.ArticleStatusPublished, false)

	const fetchers = 16
	errCh := make(chan error, fetchers)
	var wg sync.WaitGroup
	for i := 0; i < fetchers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.IncrementViewCount(article.ID); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent increment failed: %v", err)
	}

	got, err := repo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if got == nil {
		t.Fatal("article not found after increment")
	}
	if got.ViewCount != fetchers {
		t.Fatalf("view count want %d got %d", fetchers, got.ViewCount)
	}
}

func TestArticleReplaceTags(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	tagA := &models.Tag{Name: "a"}
	tagB := &models.Tag{Name: "b"}
	tagC := &models.Tag{Name: "c"}
	for _, tag := range []*models.Tag{tagA, tagB, tagC} {
		if err := db.Create(tag).Error; err != nil {
			t.Fatalf("create tag failed: %v", err)
		}
	}
	article := createTestArticle(t, repo, "tagged", true, constants.ArticleStatusPublished, false)

	if err := repo.ReplaceTags(article.ID, []uint{tagA.ID, tagB.ID}); err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}
	if err := repo.ReplaceTags(article.ID, []uint{tagC.ID}); err != nil {
		t.Fatalf("replace tags again failed: %v", err)
	}

	got, err := repo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != tagC.ID {
		t.Fatalf("tags after replace want [c] got %+v", got.Tags)
	}

	// 传空集合等价于清空
	if err := repo.ReplaceTags(article.ID, nil); err != nil {
		t.Fatalf("clear tags failed: %v", err)
	}
	got, err = repo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("tags after clear want empty got %+v", got.Tags)
	}
}

func TestArticleDeleteCleansJoinRows(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewArticleRepository(db)

	tag := &models.Tag{Name: "orphan-check"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	article := createTestArticle(t, repo, "doomed", true, constants.ArticleStatusPublished, false)
	if err := repo.ReplaceTags(article.ID, []uint{tag.ID}); err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}

	if err := repo.Delete(article.ID); err != nil {
		t.Fatalf("delete article failed: %v", err)
	}

	got, err := repo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("get article failed: %v", err)
	}
	if got != nil {
		t.Fatal("article should be gone after delete")
	}
	var joinCount int64
	if err := db.Model(&models.ArticleTag{}).Where("article_id = ?", article.ID).Count(&joinCount).Error; err != nil {
		t.Fatalf("count join rows failed: %v", err)
	}
	if joinCount != 0 {
		t.Fatalf("join rows want 0 got %d", joinCount)
	}
}
