package service

import (
	"strconv"
	"strings"

	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"gorm.io/gorm"
)

// ReviewService 游戏评价服务
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo repository.GameRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
	}
}

// ListByGame 游戏评价列表
func (s *ReviewService) ListByGame(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.ListByGame(filter)
}

// ListForAdmin 管理端评价列表
func (s *ReviewService) ListForAdmin(filter repository.ReviewListFilter) ([]models.Review, int64, error) {
	return s.reviewRepo.ListAdmin(filter)
}

// Create 创建评价并同步游戏评分统计
// 每个用户对同一游戏只能评价一次。
func (s *ReviewService) Create(userID, gameID uint, rating int, title, comment string) (*models.Review, error) {
	if rating < constants.ReviewRatingMin || rating > constants.ReviewRatingMax {
		return nil, ErrReviewRatingInvalid
	}

	game, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(gameID), 10))
	if err != nil {
		return nil, err
	}
	if game == nil || !game.IsActive {
		return nil, ErrGameNotFound
	}

	existing, err := s.reviewRepo.GetByUserAndGame(userID, gameID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := &models.Review{
		UserID:  userID,
		GameID:  gameID,
		Rating:  rating,
		Title:   strings.TrimSpace(title),
		Comment: strings.TrimSpace(comment),
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		reviewRepo := s.reviewRepo.WithTx(tx)
		gameRepo := s.gameRepo.WithTx(tx)

		if err := reviewRepo.Create(review); err != nil {
			return err
		}
		agg, err := reviewRepo.AggregateByGame(gameID)
		if err != nil {
			return err
		}
		return gameRepo.UpdateRatingStats(gameID, agg.AvgRating, agg.ReviewCount)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Delete 删除评价（管理端）并重算游戏评分统计
func (s *ReviewService) Delete(id string) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		reviewRepo := s.reviewRepo.WithTx(tx)
		gameRepo := s.gameRepo.WithTx(tx)

		if err := reviewRepo.Delete(id); err != nil {
			return err
		}
		agg, err := reviewRepo.AggregateByGame(review.GameID)
		if err != nil {
			return err
		}
		return gameRepo.UpdateRatingStats(review.GameID, agg.AvgRating, agg.ReviewCount)
	})
}
