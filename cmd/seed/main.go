package main

import (
	"time"

	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/logger"
	"github.com/gamebazaar/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "action", Name: "Action", Icon: "swords", SortOrder: 10},
		{Slug: "rpg", Name: "RPG", Icon: "shield", SortOrder: 20},
		{Slug: "strategy", Name: "Strategy", Icon: "chess", SortOrder: 30},
		{Slug: "indie", Name: "Indie", Icon: "sparkles", SortOrder: 40},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"action", "rpg", "strategy", "indie"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	releaseAt := func(value string) *time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil
		}
		return &parsed
	}
	money := func(value float64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(value))
	}
	moneyPtr := func(value float64) *models.Money {
		m := money(value)
		return &m
	}

	// 添加游戏
	games := []models.Game{
		{
			CategoryID:  categoryIDs["action"],
			Slug:        "neon-drift-zero",
			Title:       "Neon Drift Zero",
			Description: "High-speed combat racing through a collapsing megacity.",
			Genre:       "action",
			Platform:    "pc",
			Publisher:   "Volt Arcade",
			ReleaseDate: releaseAt("2025-03-14"),
			Image:       "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800",
			Price:       money(59.99),
			StockCount:  120,
			InStock:     true,
			IsActive:    true,
			SortOrder:   10,
		},
		{
			CategoryID:    categoryIDs["rpg"],
			Slug:          "emberfall-chronicles",
			Title:         "Emberfall Chronicles",
			Description:   "An open-world RPG about rebuilding a kingdom after the long winter.",
			Genre:         "rpg",
			Platform:      "pc",
			Publisher:     "Northlight Studio",
			ReleaseDate:   releaseAt("2024-11-02"),
			Image:         "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800",
			Price:         money(49.99),
			DiscountPrice: moneyPtr(34.99),
			StockCount:    80,
			InStock:       true,
			IsActive:      true,
			SortOrder:     20,
		},
		{
			CategoryID:  categoryIDs["strategy"],
			Slug:        "starlane-tacticians",
			Title:       "Starlane Tacticians",
			Description: "Turn-based fleet tactics across a procedurally generated galaxy.",
			Genre:       "strategy",
			Platform:    "switch",
			Publisher:   "Parallax Forge",
			ReleaseDate: releaseAt("2025-06-20"),
			Image:       "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?w=800",
			Price:       money(39.99),
			StockCount:  45,
			InStock:     true,
			IsActive:    true,
			SortOrder:   30,
		},
		{
			CategoryID:  categoryIDs["indie"],
			Slug:        "paper-lanterns",
			Title:       "Paper Lanterns",
			Description: "A hand-drawn puzzle adventure about a festival that never ends.",
			Genre:       "puzzle",
			Platform:    "pc",
			Publisher:   "Teahouse Games",
			ReleaseDate: releaseAt("2024-08-09"),
			Image:       "https://images.unsplash.com/photo-1493932484895-752d1471eab5?w=800",
			Price:       money(19.99),
			StockCount:  0,
			InStock:     false,
			IsActive:    true,
			SortOrder:   40,
		},
	}

	for _, game := range games {
		var existing models.Game
		if err := models.DB.Where("slug = ?", game.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&game).Error; err != nil {
				stdLog.Printf("Failed to create game %s: %v", game.Slug, err)
			} else {
				stdLog.Printf("Created game: %s", game.Slug)
			}
		} else {
			stdLog.Printf("Game already exists: %s", game.Slug)
		}
	}

	// 添加文章
	now := time.Now()
	posts := []models.Post{
		{
			Slug:        "welcome-to-gamebazaar",
			Type:        "news",
			Title:       "Welcome to GameBazaar",
			Summary:     "The storefront is open. Here is what to expect.",
			Content:     "GameBazaar is now live. Browse the catalog, keep a wishlist, and follow this blog for release news and sales.",
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Slug:        "emberfall-launch-sale",
			Type:        "promo",
			Title:       "Emberfall Chronicles launch sale",
			Summary:     "30% off for the first two weeks.",
			Content:     "To celebrate the launch of Emberfall Chronicles, the game is 30% off until the end of the month.",
			IsPublished: true,
			PublishedAt: &now,
		},
	}

	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("slug = ?", post.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", post.Slug, err)
			} else {
				stdLog.Printf("Created post: %s", post.Slug)
			}
		} else {
			stdLog.Printf("Post already exists: %s", post.Slug)
		}
	}

	stdLog.Printf("Seed finished")
}
