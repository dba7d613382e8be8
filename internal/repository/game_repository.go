package repository

import (
	"errors"
	"strings"

	"github.com/gamebazaar/internal/models"

	"gorm.io/gorm"
)

// GameRepository 游戏数据访问接口
type GameRepository interface {
	List(filter GameListFilter) ([]models.Game, int64, error)
	GetBySlug(slug string, onlyActive bool) (*models.Game, error)
	GetByID(id string) (*models.Game, error)
	ListByIDs(ids []uint) ([]models.Game, error)
	Create(game *models.Game) error
	Update(game *models.Game) error
	Delete(id string) error
	CountBySlug(slug string, excludeID *string) (int64, error)
	DecrementStock(gameID uint, quantity int) (int64, error)
	RestoreStock(gameID uint, quantity int) (int64, error)
	UpdateRatingStats(gameID uint, rating float64, numReviews int64) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) GameRepository
}

// GormGameRepository GORM 实现
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository 创建游戏仓库
func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// WithTx 绑定事务
func (r *GormGameRepository) WithTx(tx *gorm.DB) GameRepository {
	if tx == nil {
		return r
	}
	return &GormGameRepository{db: tx}
}

// Transaction 执行事务
func (r *GormGameRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 游戏列表
func (r *GormGameRepository) List(filter GameListFilter) ([]models.Game, int64, error) {
	var games []models.Game

	query := r.db.Model(&models.Game{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.OnlyInStock {
		query = query.Where("in_stock = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if genre := strings.TrimSpace(filter.Genre); genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if platform := strings.TrimSpace(filter.Platform); platform != "" {
		query = query.Where("platform = ?", platform)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("slug LIKE ? OR title LIKE ? OR publisher LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "sort_order DESC, created_at DESC"
	}

	if err := query.Order(orderBy).Find(&games).Error; err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// GetBySlug 根据 slug 获取游戏
func (r *GormGameRepository) GetBySlug(slug string, onlyActive bool) (*models.Game, error) {
	query := r.db.Preload("Category").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var game models.Game
	if err := query.First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// GetByID 根据 ID 获取游戏
func (r *GormGameRepository) GetByID(id string) (*models.Game, error) {
	var game models.Game
	if err := r.db.Preload("Category").First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// ListByIDs 批量获取游戏
func (r *GormGameRepository) ListByIDs(ids []uint) ([]models.Game, error) {
	if len(ids) == 0 {
		return []models.Game{}, nil
	}
	var games []models.Game
	if err := r.db.Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// Create 创建游戏
func (r *GormGameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// Update 更新游戏
func (r *GormGameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete 删除游戏（软删除）
func (r *GormGameRepository) Delete(id string) error {
	return r.db.Delete(&models.Game{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormGameRepository) CountBySlug(slug string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Game{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DecrementStock 条件扣减库存
// 仅当剩余库存足够时才扣减，返回受影响行数，0 表示库存不足。
func (r *GormGameRepository) DecrementStock(gameID uint, quantity int) (int64, error) {
	if gameID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock decrement params")
	}
	result := r.db.Model(&models.Game{}).
		Where("id = ? AND stock_count >= ?", gameID, quantity).
		Updates(map[string]interface{}{
			"stock_count": gorm.Expr("stock_count - ?", quantity),
			"in_stock":    gorm.Expr("stock_count - ? > 0", quantity),
			"sales_count": gorm.Expr("sales_count + ?", quantity),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// RestoreStock 回补库存（订单取消）
func (r *GormGameRepository) RestoreStock(gameID uint, quantity int) (int64, error) {
	if gameID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock restore params")
	}
	result := r.db.Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"stock_count": gorm.Expr("stock_count + ?", quantity),
			"in_stock":    true,
			"sales_count": gorm.Expr("CASE WHEN sales_count >= ? THEN sales_count - ? ELSE 0 END", quantity, quantity),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateRatingStats 更新评分统计
func (r *GormGameRepository) UpdateRatingStats(gameID uint, rating float64, numReviews int64) error {
	if gameID == 0 {
		return nil
	}
	return r.db.Model(&models.Game{}).
		Where("id = ?", gameID).
		Updates(map[string]interface{}{
			"rating":      rating,
			"num_reviews": numReviews,
		}).Error
}
