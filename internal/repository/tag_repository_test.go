package repository

import (
	"testing"

	"github.com/lumina-blog/internal/constants"
	"github.com/lumina-blog/internal/models"
)

func TestTagDeleteCleansArticleLinks(t *testing.T) {
	db := setupRepositoryTest(t)
	tagRepo := NewTagRepository(db)
	articleRepo := NewArticleRepository(db)

	tag := &models.Tag{Name: "doomed-tag"}
	if err := tagRepo.Create(tag); err != nil {
		t.Fatalf("create tag failed: %v", err)
	}
	article := createTestArticle(t, articleRepo, "keeper", true, constants.ArticleStatusPublished, false)
	if err := articleRepo.ReplaceTags(article.ID, []uint{tag.ID}); err != nil {
		t.Fatalf("replace tags failed: %v", err)
	}

	if err := tagRepo.Delete(tag.ID); err != nil {
		t.Fatalf("delete tag failed: %v", err)
	}

	got, err := articleRepo.GetByID(article.ID)
	if err != nil {
		t.Fatalf("reload article failed: %v", err)
	}
	if got == nil {
		t.Fatal("article should survive tag delete")
	}
	if len(got.Tags) != 0 {
		t.Fatalf("article tags want empty got %+v", got.Tags)
	}
}

func TestTagGetByIDs(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewTagRepository(db)

	tagA := &models.Tag{Name: "a"}
	tagB := &models.Tag{Name: "b"}
	for _, tag := range []*models.Tag{tagA, tagB} {
		if err := repo.Create(tag); err != nil {
			t.Fatalf("create tag failed: %v", err)
		}
	}

	tags, err := repo.GetByIDs([]uint{tagA.ID, tagB.ID, 9999})
	if err != nil {
		t.Fatalf("get by ids failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("tags want 2 got %d", len(tags))
	}

	tags, err = repo.GetByIDs(nil)
	if err != nil {
		t.Fatalf("get by empty ids failed: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("empty ids want no rows got %d", len(tags))
	}
}

func TestTagCountByName(t *testing.T) {
	db := setupRepositoryTest(t)
	repo := NewTagRepository(db)

	tag := &models.Tag{Name: "unique-name"}
	if err := repo.Create(tag); err != nil {
		t.Fatalf("create tag failed: %v", err)
	}

	count, err := repo.CountByName("unique-name", nil)
	if err != nil {
		t.Fatalf("count by name failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}
	count, err = repo.CountByName("unique-name", &tag.ID)
	if err != nil {
		t.Fatalf("count with exclude failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count with exclude want 0 got %d", count)
	}
}
