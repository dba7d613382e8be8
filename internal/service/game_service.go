package service

import (
	"strings"
	"time"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
)

// GameService 游戏目录服务
type GameService struct {
	gameRepo     repository.GameRepository
	categoryRepo repository.CategoryRepository
}

// NewGameService 创建游戏服务
func NewGameService(gameRepo repository.GameRepository, categoryRepo repository.CategoryRepository) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
	}
}

// gameSortKeys 列表排序白名单，防止外部传入任意 SQL 片段
var gameSortKeys = map[string]string{
	"newest":     "created_at DESC",
	"price_asc":  "price ASC",
	"price_desc": "price DESC",
	"rating":     "rating DESC, num_reviews DESC",
	"sales":      "sales_count DESC",
	"release":    "release_date DESC",
}

// ResolveGameOrderBy 将排序键转换为排序子句，未知键回落默认排序
func ResolveGameOrderBy(sort string) string {
	if orderBy, ok := gameSortKeys[strings.ToLower(strings.TrimSpace(sort))]; ok {
		return orderBy
	}
	return ""
}

// List 游戏列表
func (s *GameService) List(filter repository.GameListFilter) ([]models.Game, int64, error) {
	return s.gameRepo.List(filter)
}

// GetBySlug 获取游戏详情
func (s *GameService) GetBySlug(slug string, onlyActive bool) (*models.Game, error) {
	game, err := s.gameRepo.GetBySlug(strings.TrimSpace(slug), onlyActive)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// GetByID 获取游戏详情（管理端）
func (s *GameService) GetByID(id string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// Create 创建游戏
func (s *GameService) Create(game *models.Game) error {
	if game == nil || strings.TrimSpace(game.Slug) == "" || strings.TrimSpace(game.Title) == "" {
		return ErrGameNotFound
	}
	game.Slug = strings.TrimSpace(game.Slug)
	count, err := s.gameRepo.CountBySlug(game.Slug, nil)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGameSlugExists
	}
	game.InStock = game.StockCount > 0
	now := time.Now()
	game.CreatedAt = now
	game.UpdatedAt = now
	return s.gameRepo.Create(game)
}

// Update 更新游戏
func (s *GameService) Update(id string, game *models.Game) error {
	existing, err := s.gameRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGameNotFound
	}

	slug := strings.TrimSpace(game.Slug)
	if slug != "" && slug != existing.Slug {
		count, err := s.gameRepo.CountBySlug(slug, &id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrGameSlugExists
		}
	}

	game.ID = existing.ID
	game.CreatedAt = existing.CreatedAt
	game.InStock = game.StockCount > 0
	game.UpdatedAt = time.Now()
	return s.gameRepo.Update(game)
}

// Delete 删除游戏（软删除）
func (s *GameService) Delete(id string) error {
	existing, err := s.gameRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGameNotFound
	}
	return s.gameRepo.Delete(id)
}
