package service

import (
	"strconv"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
)

// WishlistService 心愿单服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	gameRepo     repository.GameRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, gameRepo repository.GameRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		gameRepo:     gameRepo,
	}
}

// ListByUser 用户心愿单，已下架游戏不返回
func (s *WishlistService) ListByUser(userID uint) ([]models.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	result := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.Game == nil || !item.Game.IsActive {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// Add 加入心愿单，重复加入按成功处理
func (s *WishlistService) Add(userID, gameID uint) error {
	game, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(gameID), 10))
	if err != nil {
		return err
	}
	if game == nil || !game.IsActive {
		return ErrGameNotFound
	}

	existing, err := s.wishlistRepo.GetByUserAndGame(userID, gameID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return s.wishlistRepo.Create(&models.WishlistItem{
		UserID: userID,
		GameID: gameID,
	})
}

// Remove 移出心愿单，不存在时按成功处理
func (s *WishlistService) Remove(userID, gameID uint) error {
	return s.wishlistRepo.DeleteByUserAndGame(userID, gameID)
}
