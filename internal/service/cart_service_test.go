package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Game{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewCartService(repository.NewCartRepository(db), repository.NewGameRepository(db), "USD")
	return svc, db
}

func TestCartAddItemMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 201

	game := seedGame(t, db, "cart-merge", 25, 3)

	if err := svc.AddItem(userID, game.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(userID, game.ID, 1); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart rows want 1 got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("merged quantity want 3 got %d", items[0].Quantity)
	}

	// 合并后超出库存整次拒绝，数量保持不变
	if err := svc.AddItem(userID, game.ID, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("merge over stock want ErrInsufficientStock got %v", err)
	}
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity after rejected add want 3 got %d", items[0].Quantity)
	}
}

func TestCartAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 202

	if err := svc.AddItem(0, 1, 1); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero user want ErrInvalidCartItem got %v", err)
	}
	if err := svc.AddItem(userID, 1, 0); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero quantity want ErrInvalidCartItem got %v", err)
	}

	game := seedGame(t, db, "cart-inactive", 25, 3)
	if err := db.Model(game).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate game failed: %v", err)
	}
	if err := svc.AddItem(userID, game.ID, 1); !errors.Is(err, ErrGameNotAvailable) {
		t.Fatalf("inactive game want ErrGameNotAvailable got %v", err)
	}
}

func TestCartUpdateItem(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 203

	game := seedGame(t, db, "cart-update", 25, 5)
	if err := svc.AddItem(userID, game.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	var item models.CartItem
	if err := db.Where("user_id = ? AND game_id = ?", userID, game.ID).First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}

	// 数量为绝对值而非增量
	if err := svc.UpdateItem(userID, item.ID, 4); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := db.First(&item, item.ID).Error; err != nil {
		t.Fatalf("reload item failed: %v", err)
	}
	if item.Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", item.Quantity)
	}

	if err := svc.UpdateItem(userID, item.ID, 6); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("update over stock want ErrInsufficientStock got %v", err)
	}
	if err := svc.UpdateItem(userID, item.ID+1000, 1); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("missing item want ErrCartItemNotFound got %v", err)
	}
	if err := svc.UpdateItem(userID, item.ID, 0); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero quantity want ErrInvalidCartItem got %v", err)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 204

	first := seedGame(t, db, "cart-remove-a", 25, 5)
	second := seedGame(t, db, "cart-remove-b", 30, 5)
	if err := svc.AddItem(userID, first.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.AddItem(userID, second.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var item models.CartItem
	if err := db.Where("user_id = ? AND game_id = ?", userID, first.ID).First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if err := svc.RemoveItem(userID, item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	// 重复删除视为成功
	if err := svc.RemoveItem(userID, item.ID); err != nil {
		t.Fatalf("repeat remove failed: %v", err)
	}

	if err := svc.Clear(userID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("cart after clear want empty got %d", count)
	}
}

func TestCartGetByUserKeepsSnapshotPrice(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 206

	game := seedGame(t, db, "cart-snapshot", 20, 5)
	if err := svc.AddItem(userID, game.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// 加购后涨价不影响已有行的快照价
	newPrice := models.NewMoneyFromDecimal(decimal.NewFromFloat(29.99))
	if err := db.Model(game).Update("price", newPrice).Error; err != nil {
		t.Fatalf("raise price failed: %v", err)
	}

	detail, err := svc.GetByUser(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("cart items want 1 got %d", len(detail.Items))
	}
	if detail.Items[0].UnitPrice.String() != "20.00" {
		t.Fatalf("unit price want snapshot 20.00 got %s", detail.Items[0].UnitPrice.String())
	}
	if detail.Items[0].LineTotal.String() != "40.00" {
		t.Fatalf("line total want 40.00 got %s", detail.Items[0].LineTotal.String())
	}
	if detail.ItemsAmount.String() != "40.00" {
		t.Fatalf("items amount want 40.00 got %s", detail.ItemsAmount.String())
	}
}

func TestCartGetByUserComputesTotals(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	const userID = 205

	discounted := seedGame(t, db, "cart-total-discount", 49.99, 5)
	discount := models.NewMoneyFromDecimal(decimal.NewFromFloat(34.99))
	if err := db.Model(discounted).Update("discount_price", discount).Error; err != nil {
		t.Fatalf("set discount failed: %v", err)
	}
	full := seedGame(t, db, "cart-total-full", 60, 5)
	retired := seedGame(t, db, "cart-total-retired", 15, 5)

	if err := svc.AddItem(userID, discounted.ID, 2); err != nil {
		t.Fatalf("add discounted failed: %v", err)
	}
	if err := svc.AddItem(userID, full.ID, 1); err != nil {
		t.Fatalf("add full failed: %v", err)
	}
	if err := svc.AddItem(userID, retired.ID, 1); err != nil {
		t.Fatalf("add retired failed: %v", err)
	}
	// 下架的游戏在读取时移出购物车
	if err := db.Model(retired).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate game failed: %v", err)
	}

	detail, err := svc.GetByUser(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if detail.Currency != "USD" {
		t.Fatalf("currency want USD got %s", detail.Currency)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("cart items want 2 got %d", len(detail.Items))
	}
	if detail.ItemsAmount.String() != "129.98" {
		t.Fatalf("items amount want 129.98 got %s", detail.ItemsAmount.String())
	}
	for _, item := range detail.Items {
		if item.GameID == discounted.ID {
			if item.UnitPrice.String() != "34.99" || item.LineTotal.String() != "69.98" {
				t.Fatalf("discounted line want 34.99/69.98 got %s/%s", item.UnitPrice.String(), item.LineTotal.String())
			}
		}
		if item.GameID == retired.ID {
			t.Fatalf("retired game should be removed from cart")
		}
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ? AND game_id = ?", userID, retired.ID).Count(&count).Error; err != nil {
		t.Fatalf("count retired row failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("retired row should be deleted, got %d", count)
	}
}
