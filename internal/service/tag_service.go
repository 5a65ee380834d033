package service

import (
	"strings"

	"github.com/lumina-blog/internal/models"
	"github.com/lumina-blog/internal/repository"
)

// TagService 标签业务服务
type TagService struct {
	repo repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(repo repository.TagRepository) *TagService {
	return &TagService{repo: repo}
}

// List 标签列表
func (s *TagService) List(search string) ([]models.Tag, error) {
	return s.repo.List(repository.TagListFilter{Search: search})
}

// Get 标签详情
func (s *TagService) Get(id uint) (*models.Tag, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}
	return tag, nil
}

// Create 创建标签，名称唯一
func (s *TagService) Create(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	tag := models.Tag{Name: name}
	if err := s.repo.Create(&tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update 更新标签
func (s *TagService) Update(id uint, name string) (*models.Tag, error) {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, ErrNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	tag.Name = name
	if err := s.repo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete 删除标签，同时解除与文章的关联
func (s *TagService) Delete(id uint) error {
	tag, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
