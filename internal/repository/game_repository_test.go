package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gamebazaar/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupGameRepositoryTest(t *testing.T) (*GormGameRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Game{}, &models.Review{}, &models.User{}); err != nil {
		t.Fatalf("migrate game failed: %v", err)
	}
	return NewGameRepository(db), db
}

func createGame(t *testing.T, repo *GormGameRepository, slug string, stock int) *models.Game {
	t.Helper()
	game := &models.Game{
		CategoryID: 1,
		Slug:       slug,
		Title:      "Test Game",
		Genre:      "RPG",
		Platform:   "pc",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
		StockCount: stock,
		InStock:    stock > 0,
		IsActive:   true,
	}
	if err := repo.Create(game); err != nil {
		t.Fatalf("create game failed: %v", err)
	}
	return game
}

func TestDecrementStockLifecycle(t *testing.T) {
	repo, db := setupGameRepositoryTest(t)
	game := createGame(t, repo, "stock-lifecycle", 5)

	affected, err := repo.DecrementStock(game.ID, 3)
	if err != nil {
		t.Fatalf("decrement stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("decrement affected want 1 got %d", affected)
	}

	var got models.Game
	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.StockCount != 2 {
		t.Fatalf("stock want 2 got %d", got.StockCount)
	}
	if !got.InStock {
		t.Fatalf("in_stock want true got false")
	}
	if got.SalesCount != 3 {
		t.Fatalf("sales want 3 got %d", got.SalesCount)
	}

	affected, err = repo.DecrementStock(game.ID, 3)
	if err != nil {
		t.Fatalf("decrement over available failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("decrement over available affected want 0 got %d", affected)
	}

	affected, err = repo.DecrementStock(game.ID, 2)
	if err != nil {
		t.Fatalf("decrement exact available failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("decrement exact available affected want 1 got %d", affected)
	}

	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.StockCount != 0 {
		t.Fatalf("stock want 0 got %d", got.StockCount)
	}
	if got.InStock {
		t.Fatalf("in_stock want false got true")
	}
}

func TestRestoreStockAfterCancel(t *testing.T) {
	repo, db := setupGameRepositoryTest(t)
	game := createGame(t, repo, "stock-restore", 1)

	if affected, err := repo.DecrementStock(game.ID, 1); err != nil || affected != 1 {
		t.Fatalf("decrement failed: affected=%d err=%v", affected, err)
	}

	affected, err := repo.RestoreStock(game.ID, 1)
	if err != nil {
		t.Fatalf("restore stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("restore affected want 1 got %d", affected)
	}

	var got models.Game
	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.StockCount != 1 {
		t.Fatalf("stock want 1 got %d", got.StockCount)
	}
	if !got.InStock {
		t.Fatalf("in_stock want true got false")
	}
	if got.SalesCount != 0 {
		t.Fatalf("sales want 0 got %d", got.SalesCount)
	}
}

func TestListGamesFilters(t *testing.T) {
	repo, _ := setupGameRepositoryTest(t)

	rpg := createGame(t, repo, "rpg-pc", 3)
	shooter := createGame(t, repo, "shooter-ps5", 0)
	shooter.Genre = "Shooter"
	shooter.Platform = "ps5"
	shooter.InStock = false
	if err := repo.Update(shooter); err != nil {
		t.Fatalf("update game failed: %v", err)
	}

	games, total, err := repo.List(GameListFilter{Page: 1, PageSize: 10, Genre: "RPG"})
	if err != nil {
		t.Fatalf("list by genre failed: %v", err)
	}
	if total != 1 || len(games) != 1 || games[0].Slug != rpg.Slug {
		t.Fatalf("genre filter want only %s got total=%d", rpg.Slug, total)
	}

	games, total, err = repo.List(GameListFilter{Page: 1, PageSize: 10, OnlyInStock: true})
	if err != nil {
		t.Fatalf("list in stock failed: %v", err)
	}
	if total != 1 || games[0].Slug != rpg.Slug {
		t.Fatalf("in-stock filter want only %s got total=%d", rpg.Slug, total)
	}

	games, total, err = repo.List(GameListFilter{Page: 1, PageSize: 10, Search: "shooter"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if total != 1 || games[0].Slug != shooter.Slug {
		t.Fatalf("search filter want only %s got total=%d", shooter.Slug, total)
	}
}

func TestAggregateReviewsByGame(t *testing.T) {
	repo, db := setupGameRepositoryTest(t)
	game := createGame(t, repo, "rated-game", 3)
	reviews := NewReviewRepository(db)

	for i, rating := range []int{5, 4} {
		review := &models.Review{
			UserID: uint(i + 1),
			GameID: game.ID,
			Rating: rating,
			Title:  "ok",
		}
		if err := reviews.Create(review); err != nil {
			t.Fatalf("create review failed: %v", err)
		}
	}

	agg, err := reviews.AggregateByGame(game.ID)
	if err != nil {
		t.Fatalf("aggregate reviews failed: %v", err)
	}
	if agg.ReviewCount != 2 {
		t.Fatalf("review count want 2 got %d", agg.ReviewCount)
	}
	if agg.AvgRating != 4.5 {
		t.Fatalf("avg rating want 4.5 got %v", agg.AvgRating)
	}

	if err := repo.UpdateRatingStats(game.ID, agg.AvgRating, agg.ReviewCount); err != nil {
		t.Fatalf("update rating stats failed: %v", err)
	}
	var got models.Game
	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.Rating != 4.5 || got.NumReviews != 2 {
		t.Fatalf("rating stats want (4.5, 2) got (%v, %d)", got.Rating, got.NumReviews)
	}
}
