package service

import (
	"strings"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetByID 获取分类
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类
func (s *CategoryService) Create(category *models.Category) error {
	if category == nil || strings.TrimSpace(category.Slug) == "" {
		return ErrCategoryNotFound
	}
	category.Slug = strings.TrimSpace(category.Slug)
	count, err := s.categoryRepo.CountBySlug(category.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategorySlugExists
	}
	return s.categoryRepo.Create(category)
}

// Update 更新分类
func (s *CategoryService) Update(id string, category *models.Category) error {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}

	slug := strings.TrimSpace(category.Slug)
	if slug != "" && slug != existing.Slug {
		count, err := s.categoryRepo.CountBySlug(slug, &id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrCategorySlugExists
		}
	}

	category.ID = existing.ID
	category.CreatedAt = existing.CreatedAt
	return s.categoryRepo.Update(category)
}

// Delete 删除分类，分类下仍有游戏时拒绝
func (s *CategoryService) Delete(id string) error {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}
	count, err := s.categoryRepo.CountGames(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}
	return s.categoryRepo.Delete(id)
}
