package repository

import (
	"testing"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"
)

func TestCategoryDeleteDetachesArticles(t *testing.T) {
	db := setupRepositoryTest(t)
	categoryRepo := NewCategoryRepository(db)
	articleRepo := NewArticleRepository(db)

	category := &models.Category{Name: "随笔"}
	if err := categoryRepo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	article := createTestArticle(t, articleRepo, "attached", true, constants.ArticleStatusPublished, false)
	article.CategoryID = &category.ID
	if err := articleRepo.Update(article); err != nil {
		t.Fatalf("attach category failed: %v", err)
	}

	if err := categoryRepo.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}

	got, err := articleRepo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("reload article failed: %v", err)
	}
	if got == nil {
		t.Fatal("article should survive category delete")
	}
	if got.CategoryID != nil {
		t.Fatalf("category_id want NULL got %d", *got.CategoryID)
	}
}

func TestCategoryCountByName(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewCategoryRepository(db)

	category := &models.Category{Name: "生活"}
	if err := repo.Create(category); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	count, err := repo.CountByName("生活", nil)
	if err != nil {
		t.Fatalf("count by name failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	// 更新自身时排除自己的 ID 不应计入
	count, err = repo.CountByName("生活", &category.ID)
	if err != nil {
		t.Fatalf("count by name with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with exclude want 0 got %d", count)
	}
}

func TestCategoryGetByIDMissing(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewCategoryRepository(db)

	got, err := repo.GetByID(4096)
	if err != nil {
		t.Fatalf("get missing category failed: %v", err)
	}
	if got != nil {
		t.Fatalf("missing category want nil got %+v", got)
	}
}
