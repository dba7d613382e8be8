package service

import (
	"strconv"
	"time"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ItemID    uint         `json:"item_id"`
	GameID    uint         `json:"game_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	LineTotal models.Money `json:"line_total"`
	Game      *models.Game `json:"game"`
}

// CartDetail 购物车详情（含合计）
type CartDetail struct {
	Items       []CartItemDetail `json:"items"`
	ItemsAmount models.Money     `json:"items_amount"`
	Currency    string           `json:"currency"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
	gameRepo repository.GameRepository
	currency string
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, gameRepo repository.GameRepository, currency string) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		gameRepo: gameRepo,
		currency: currency,
	}
}

// GetByUser 获取用户购物车
// 行价采用加购时的快照价，已下架或删除的游戏项会被移出购物车
func (s *CartService) GetByUser(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	itemsAmount := decimal.Zero
	for _, item := range items {
		game := item.Game
		if game == nil || game.ID == 0 {
			g, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(item.GameID), 10))
			if err != nil {
				return nil, err
			}
			game = g
		}
		if game == nil || !game.IsActive {
			_ = s.cartRepo.DeleteByUserAndID(userID, item.ID)
			continue
		}

		unitPrice := item.Price
		lineTotal := unitPrice.MulQuantity(item.Quantity)
		itemsAmount = itemsAmount.Add(lineTotal.Decimal).Round(2)

		details = append(details, CartItemDetail{
			ItemID:    item.ID,
			GameID:    item.GameID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			LineTotal: lineTotal,
			Game:      game,
		})
	}
	return &CartDetail{
		Items:       details,
		ItemsAmount: models.NewMoneyFromDecimal(itemsAmount),
		Currency:    s.currency,
	}, nil
}

// AddItem 添加购物车项
// 同一游戏重复添加时数量合并，合并后数量不得超出库存
func (s *CartService) AddItem(userID, gameID uint, quantity int) error {
	if userID == 0 || gameID == 0 || quantity <= 0 {
		return ErrInvalidCartItem
	}
	game, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(gameID), 10))
	if err != nil {
		return err
	}
	if game == nil || !game.IsActive {
		return ErrGameNotAvailable
	}

	existing, err := s.cartRepo.GetByUserAndGame(userID, gameID)
	if err != nil {
		return err
	}

	mergedQuantity := quantity
	if existing != nil {
		mergedQuantity += existing.Quantity
	}
	if !game.Purchasable(mergedQuantity) {
		return NewInsufficientStockError(game.Title)
	}

	now := time.Now()
	if existing != nil {
		existing.Quantity = mergedQuantity
		existing.Price = game.EffectivePrice()
		existing.UpdatedAt = now
		return s.cartRepo.Update(existing)
	}
	return s.cartRepo.Create(&models.CartItem{
		UserID:    userID,
		GameID:    gameID,
		Quantity:  quantity,
		Price:     game.EffectivePrice(),
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// UpdateItem 更新购物车项数量（绝对值）
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) error {
	if userID == 0 || itemID == 0 || quantity <= 0 {
		return ErrInvalidCartItem
	}
	item, err := s.cartRepo.GetByUserAndID(userID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}

	game, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(item.GameID), 10))
	if err != nil {
		return err
	}
	if game == nil || !game.IsActive {
		return ErrGameNotAvailable
	}
	if !game.Purchasable(quantity) {
		return NewInsufficientStockError(game.Title)
	}

	item.Quantity = quantity
	item.Price = game.EffectivePrice()
	item.UpdatedAt = time.Now()
	return s.cartRepo.Update(item)
}

// RemoveItem 删除购物车项，行不存在时视为成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	if userID == 0 || itemID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByUserAndID(userID, itemID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userID)
}
