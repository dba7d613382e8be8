package public

import (
	"errors"
	"strconv"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetGameReviews 游戏评价列表
func (h *Handler) GetGameReviews(c *gin.Context) {
	game, err := h.GameService.GetBySlug(c.Param("slug"), true)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			respondError(c, response.CodeNotFound, "error.game_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.game_fetch_failed", err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	minRating, _ := strconv.Atoi(c.Query("min_rating"))

	reviews, total, err := h.ReviewService.ListByGame(repository.ReviewListFilter{
		Page:      page,
		PageSize:  pageSize,
		GameID:    game.ID,
		MinRating: minRating,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, reviews, response.BuildPagination(page, pageSize, total))
}

// ReviewCreateRequest 创建评价请求
type ReviewCreateRequest struct {
	GameID  uint   `json:"game_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CreateReview 创建游戏评价
func (h *Handler) CreateReview(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	review, err := h.ReviewService.Create(userID, req.GameID, req.Rating, req.Title, req.Comment)
	if err != nil {
		respondReviewCreateError(c, err)
		return
	}

	response.Success(c, review)
}
