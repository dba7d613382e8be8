package service

import (
	"strings"
	"time"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
)

// PostService 博客与公告服务
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List 文章列表
func (s *PostService) List(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.postRepo.List(filter)
}

// GetBySlug 获取文章
func (s *PostService) GetBySlug(slug string, onlyPublished bool) (*models.Post, error) {
	post, err := s.postRepo.GetBySlug(strings.TrimSpace(slug), onlyPublished)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetByID 获取文章（管理端）
func (s *PostService) GetByID(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create 创建文章，发布状态补齐发布时间
func (s *PostService) Create(post *models.Post) error {
	if post == nil || strings.TrimSpace(post.Slug) == "" {
		return ErrPostNotFound
	}
	post.Slug = strings.TrimSpace(post.Slug)
	count, err := s.postRepo.CountBySlug(post.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPostSlugExists
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return s.postRepo.Create(post)
}

// Update 更新文章
func (s *PostService) Update(id string, post *models.Post) error {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}

	slug := strings.TrimSpace(post.Slug)
	if slug != "" && slug != existing.Slug {
		count, err := s.postRepo.CountBySlug(slug, &id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrPostSlugExists
		}
	}

	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	if post.IsPublished {
		if existing.PublishedAt != nil {
			post.PublishedAt = existing.PublishedAt
		} else if post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	}
	return s.postRepo.Update(post)
}

// Delete 删除文章
func (s *PostService) Delete(id string) error {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	return s.postRepo.Delete(id)
}
