package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetGames 游戏列表
func (h *Handler) GetGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	inStockOnly := c.Query("in_stock") == "true" || c.Query("in_stock") == "1"

	filter := repository.GameListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   strings.TrimSpace(c.Query("category_id")),
		Genre:        strings.TrimSpace(c.Query("genre")),
		Platform:     strings.TrimSpace(c.Query("platform")),
		Search:       strings.TrimSpace(c.Query("search")),
		OnlyActive:   true,
		OnlyInStock:  inStockOnly,
		WithCategory: true,
		OrderBy:      service.ResolveGameOrderBy(c.Query("sort")),
	}

	games, total, err := h.GameService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.game_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, games, response.BuildPagination(page, pageSize, total))
}

// GetGame 游戏详情
func (h *Handler) GetGame(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	game, err := h.GameService.GetBySlug(slug, true)
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

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}
