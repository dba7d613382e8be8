package admin

import (
	"errors"
	"strconv"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers 用户列表
func (h *Handler) GetAdminUsers(c *gin.Context) {
	var query struct {
		Page          int    `form:"page"`
		PageSize      int    `form:"page_size"`
		Keyword       string `form:"keyword"`
		Status        string `form:"status"`
		CreatedFrom   string `form:"created_from"`
		CreatedTo     string `form:"created_to"`
		LastLoginFrom string `form:"last_login_from"`
		LastLoginTo   string `form:"last_login_to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  query.Keyword,
		Status:   query.Status,
	}

	createdFrom, err := parseTimeNullable(query.CreatedFrom)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(query.CreatedTo)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	lastLoginFrom, err := parseTimeNullable(query.LastLoginFrom)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	lastLoginTo, err := parseTimeNullable(query.LastLoginTo)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	filter.CreatedFrom = createdFrom
	filter.CreatedTo = createdTo
	filter.LastLoginFrom = lastLoginFrom
	filter.LastLoginTo = lastLoginTo

	users, total, listErr := h.UserAuthService.ListUsers(filter)
	if listErr != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", listErr)
		return
	}

	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// GetAdminUser 用户详情
func (h *Handler) GetAdminUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, fetchErr := h.UserAuthService.GetUserByID(uint(userID))
	if fetchErr != nil {
		if errors.Is(fetchErr, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", fetchErr)
		return
	}

	response.Success(c, user)
}

// UserStatusBatchRequest 批量更新用户状态请求
type UserStatusBatchRequest struct {
	UserIDs []uint `json:"user_ids" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// BatchUpdateAdminUserStatus 批量启用/禁用用户
func (h *Handler) BatchUpdateAdminUserStatus(c *gin.Context) {
	var req UserStatusBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if len(req.UserIDs) == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	affected, err := h.UserAuthService.BatchUpdateUserStatus(req.UserIDs, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeBadRequest, "error.user_status_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_update_failed", err)
		return
	}

	requestLog(c).Infow("admin_users_status_updated",
		"status", req.Status, "requested", len(req.UserIDs), "affected", affected)
	response.Success(c, gin.H{"affected": affected})
}
