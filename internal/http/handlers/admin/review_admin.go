package admin

import (
	"errors"
	"strconv"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminReviews 评价列表
func (h *Handler) GetAdminReviews(c *gin.Context) {
	var query struct {
		Page      int    `form:"page"`
		PageSize  int    `form:"page_size"`
		GameID    uint   `form:"game_id"`
		UserID    uint   `form:"user_id"`
		MinRating string `form:"min_rating"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repository.ReviewListFilter{
		Page:     page,
		PageSize: pageSize,
		GameID:   query.GameID,
		UserID:   query.UserID,
	}
	if query.MinRating != "" {
		if minRating, parseErr := strconv.Atoi(query.MinRating); parseErr == nil {
			filter.MinRating = minRating
		}
	}

	reviews, total, err := h.ReviewService.ListForAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.review_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, reviews, response.BuildPagination(page, pageSize, total))
}

// DeleteAdminReview 删除评价并重算游戏评分
func (h *Handler) DeleteAdminReview(c *gin.Context) {
	if err := h.ReviewService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, response.CodeNotFound, "error.review_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}

	requestLog(c).Infow("admin_review_deleted", "review_id", c.Param("id"))
	response.Success(c, gin.H{"deleted": true})
}
