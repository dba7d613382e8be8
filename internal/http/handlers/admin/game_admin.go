package admin

import (
	"errors"
	"time"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GameSaveRequest 游戏创建/更新请求
type GameSaveRequest struct {
	CategoryID    uint               `json:"category_id" binding:"required"`
	Slug          string             `json:"slug" binding:"required"`
	Title         string             `json:"title" binding:"required"`
	Description   string             `json:"description"`
	Genre         string             `json:"genre"`
	Platform      string             `json:"platform"`
	Publisher     string             `json:"publisher"`
	ReleaseDate   *time.Time         `json:"release_date"`
	Image         string             `json:"image"`
	Screenshots   models.StringArray `json:"screenshots"`
	Price         models.Money       `json:"price"`
	DiscountPrice *models.Money      `json:"discount_price"`
	StockCount    int                `json:"stock_count"`
	IsActive      *bool              `json:"is_active"`
	SortOrder     int                `json:"sort_order"`
}

func (r GameSaveRequest) toModel() *models.Game {
	game := &models.Game{
		CategoryID:    r.CategoryID,
		Slug:          r.Slug,
		Title:         r.Title,
		Description:   r.Description,
		Genre:         r.Genre,
		Platform:      r.Platform,
		Publisher:     r.Publisher,
		ReleaseDate:   r.ReleaseDate,
		Image:         r.Image,
		Screenshots:   r.Screenshots,
		Price:         r.Price,
		DiscountPrice: r.DiscountPrice,
		StockCount:    r.StockCount,
		SortOrder:     r.SortOrder,
		IsActive:      true,
	}
	if r.IsActive != nil {
		game.IsActive = *r.IsActive
	}
	return game
}

// GetAdminGames 游戏列表（含未上架）
func (h *Handler) GetAdminGames(c *gin.Context) {
	var query struct {
		Page       int    `form:"page"`
		PageSize   int    `form:"page_size"`
		CategoryID string `form:"category_id"`
		Genre      string `form:"genre"`
		Platform   string `form:"platform"`
		Search     string `form:"search"`
		Sort       string `form:"sort"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repository.GameListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   query.CategoryID,
		Genre:        query.Genre,
		Platform:     query.Platform,
		Search:       query.Search,
		WithCategory: true,
		OrderBy:      service.ResolveGameOrderBy(query.Sort),
	}

	games, total, err := h.GameService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.game_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, games, response.BuildPagination(page, pageSize, total))
}

// GetAdminGame 游戏详情
func (h *Handler) GetAdminGame(c *gin.Context) {
	game, err := h.GameService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			respondError(c, response.CodeNotFound, "error.game_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.game_fetch_failed", err)
		return
	}
	response.Success(c, game)
}

// CreateAdminGame 创建游戏
func (h *Handler) CreateAdminGame(c *gin.Context) {
	var req GameSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	game := req.toModel()
	if err := h.GameService.Create(game); err != nil {
		if errors.Is(err, service.ErrGameSlugExists) {
			respondError(c, response.CodeBadRequest, "error.game_slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	requestLog(c).Infow("admin_game_created", "game_id", game.ID, "slug", game.Slug)
	response.Success(c, game)
}

// UpdateAdminGame 更新游戏
func (h *Handler) UpdateAdminGame(c *gin.Context) {
	var req GameSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	game := req.toModel()
	if err := h.GameService.Update(c.Param("id"), game); err != nil {
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			respondError(c, response.CodeNotFound, "error.game_not_found", nil)
		case errors.Is(err, service.ErrGameSlugExists):
			respondError(c, response.CodeBadRequest, "error.game_slug_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}

	response.Success(c, game)
}

// DeleteAdminGame 下架并删除游戏
func (h *Handler) DeleteAdminGame(c *gin.Context) {
	if err := h.GameService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			respondError(c, response.CodeNotFound, "error.game_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}

	requestLog(c).Infow("admin_game_deleted", "game_id", c.Param("id"))
	response.Success(c, gin.H{"deleted": true})
}
