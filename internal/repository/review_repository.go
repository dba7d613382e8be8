package repository

import (
	"errors"

	"github.com/gamebazaar/internal/models"

	"gorm.io/gorm"
)

// RatingAggregate 游戏评分聚合结果
type RatingAggregate struct {
	AvgRating   float64
	ReviewCount int64
}

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	ListByGame(filter ReviewListFilter) ([]models.Review, int64, error)
	ListAdmin(filter ReviewListFilter) ([]models.Review, int64, error)
	GetByID(id string) (*models.Review, error)
	GetByUserAndGame(userID, gameID uint) (*models.Review, error)
	Create(review *models.Review) error
	Delete(id string) error
	AggregateByGame(gameID uint) (RatingAggregate, error)
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// ListByGame 获取某游戏的评价列表
func (r *GormReviewRepository) ListByGame(filter ReviewListFilter) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).Where("game_id = ?", filter.GameID)

	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("User").Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListAdmin 管理端评价列表
func (r *GormReviewRepository) ListAdmin(filter ReviewListFilter) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{})

	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("User").Preload("Game").Order("id desc").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByID 根据 ID 获取评价
func (r *GormReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// GetByUserAndGame 获取用户对某游戏的评价
func (r *GormReviewRepository) GetByUserAndGame(userID, gameID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create 创建评价
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id string) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// AggregateByGame 统计某游戏的平均评分与评价数
func (r *GormReviewRepository) AggregateByGame(gameID uint) (RatingAggregate, error) {
	var row struct {
		AvgRating   float64
		ReviewCount int64
	}
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count").
		Where("game_id = ?", gameID).
		Take(&row).Error
	if err != nil {
		return RatingAggregate{}, err
	}
	return RatingAggregate{AvgRating: row.AvgRating, ReviewCount: row.ReviewCount}, nil
}
