package public

import (
	"errors"
	"strconv"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetWishlist 获取当前用户心愿单
func (h *Handler) GetWishlist(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.wishlist_fetch_failed", err)
		return
	}
	response.Success(c, items)
}

// WishlistAddRequest 加入心愿单请求
type WishlistAddRequest struct {
	GameID uint `json:"game_id" binding:"required"`
}

// AddWishlistItem 加入心愿单，重复加入视为成功
func (h *Handler) AddWishlistItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req WishlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.WishlistService.Add(userID, req.GameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			respondError(c, response.CodeNotFound, "error.game_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.wishlist_update_failed", err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// RemoveWishlistItem 移出心愿单，项不存在时视为成功
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	gameID, err := strconv.ParseUint(c.Param("game_id"), 10, 64)
	if err != nil || gameID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.WishlistService.Remove(userID, uint(gameID)); err != nil {
		respondError(c, response.CodeInternal, "error.wishlist_update_failed", err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
