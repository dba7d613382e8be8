package admin

import (
	"errors"
	"strconv"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminOrderListItem 订单列表项，附带买家信息
type AdminOrderListItem struct {
	models.Order
	UserEmail       string `json:"user_email"`
	UserDisplayName string `json:"user_display_name"`
}

// GetAdminOrders 订单列表
func (h *Handler) GetAdminOrders(c *gin.Context) {
	var query struct {
		Page        int    `form:"page"`
		PageSize    int    `form:"page_size"`
		UserID      uint   `form:"user_id"`
		Status      string `form:"status"`
		OrderNo     string `form:"order_no"`
		IsPaid      string `form:"is_paid"`
		CreatedFrom string `form:"created_from"`
		CreatedTo   string `form:"created_to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   query.UserID,
		Status:   query.Status,
		OrderNo:  query.OrderNo,
	}
	if query.IsPaid != "" {
		isPaid := query.IsPaid == "true" || query.IsPaid == "1"
		filter.IsPaid = &isPaid
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
	filter.CreatedFrom = createdFrom
	filter.CreatedTo = createdTo

	orders, total, err := h.OrderService.ListOrdersForAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	items := h.enrichOrdersWithUsers(orders)
	response.SuccessWithPage(c, items, response.BuildPagination(page, pageSize, total))
}

// enrichOrdersWithUsers 批量补齐买家邮箱与昵称
func (h *Handler) enrichOrdersWithUsers(orders []models.Order) []AdminOrderListItem {
	items := make([]AdminOrderListItem, 0, len(orders))
	if len(orders) == 0 {
		return items
	}

	seen := make(map[uint]struct{}, len(orders))
	userIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		userIDs = append(userIDs, order.UserID)
	}

	userByID := make(map[uint]models.User, len(userIDs))
	if users, err := h.UserRepo.ListByIDs(userIDs); err == nil {
		for _, user := range users {
			userByID[user.ID] = user
		}
	}

	for _, order := range orders {
		item := AdminOrderListItem{Order: order}
		if user, ok := userByID[order.UserID]; ok {
			item.UserEmail = user.Email
			item.UserDisplayName = user.DisplayName
		}
		items = append(items, item)
	}
	return items
}

// GetAdminOrder 订单详情
func (h *Handler) GetAdminOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, fetchErr := h.OrderService.GetOrderForAdmin(uint(orderID))
	if fetchErr != nil {
		if errors.Is(fetchErr, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", fetchErr)
		return
	}

	response.Success(c, order)
}

// OrderStatusUpdateRequest 订单状态更新请求
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAdminOrderStatus 推进订单状态
func (h *Handler) UpdateAdminOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var req OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, updateErr := h.OrderService.UpdateOrderStatus(uint(orderID), req.Status)
	if updateErr != nil {
		switch {
		case errors.Is(updateErr, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(updateErr, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		case errors.Is(updateErr, service.ErrOrderTransitionInvalid):
			respondError(c, response.CodeBadRequest, "error.order_transition_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", updateErr)
		}
		return
	}

	requestLog(c).Infow("admin_order_status_updated",
		"order_id", order.ID, "order_no", order.OrderNo, "status", order.Status)
	response.Success(c, order)
}

// ApproveAdminOrder 审核通过订单，记录审核人快照
func (h *Handler) ApproveAdminOrder(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, adminErr := h.AuthService.GetAdminByID(adminID)
	if adminErr != nil {
		respondError(c, response.CodeInternal, "error.internal", adminErr)
		return
	}
	approverName := admin.Username
	if admin.DisplayName != "" {
		approverName = admin.DisplayName
	}

	order, approveErr := h.OrderService.ApproveOrder(uint(orderID), approverName, admin.Email)
	if approveErr != nil {
		switch {
		case errors.Is(approveErr, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(approveErr, service.ErrOrderTransitionInvalid):
			respondError(c, response.CodeBadRequest, "error.order_transition_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", approveErr)
		}
		return
	}

	requestLog(c).Infow("admin_order_approved",
		"order_id", order.ID, "order_no", order.OrderNo, "approver", approverName)
	response.Success(c, order)
}
