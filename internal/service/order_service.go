package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/logger"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/queue"
	"github.com/gamebazaar/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	gameRepo    repository.GameRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
	notifier    NotificationDispatcher
	orderCfg    config.OrderConfig
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, gameRepo repository.GameRepository, cartRepo repository.CartRepository, queueClient *queue.Client, notifier NotificationDispatcher, orderCfg config.OrderConfig) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		gameRepo:    gameRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
		notifier:    notifier,
		orderCfg:    orderCfg,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	PaymentMethod   string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	ShippingCountry string
	ClientIP        string
}

// CreateOrder 从购物车创建订单
// 金额计算、订单落库、库存扣减与购物车清空在同一事务内完成，
// 任一游戏库存不足时整单回滚。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrOrderCreateFailed
	}
	paymentMethod := normalizePaymentMethod(input.PaymentMethod)
	if paymentMethod == "" {
		return nil, ErrPaymentMethodInvalid
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		return nil, ErrShippingAddressRequired
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, ErrOrderCreateFailed
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	type orderLinePlan struct {
		Game     *models.Game
		Item     models.OrderItem
		Quantity int
	}

	plans := make([]orderLinePlan, 0, len(cartItems))
	itemsAmount := decimal.Zero
	for _, cartItem := range cartItems {
		game := cartItem.Game
		if game == nil || game.ID == 0 {
			g, err := s.gameRepo.GetByID(strconv.FormatUint(uint64(cartItem.GameID), 10))
			if err != nil {
				return nil, ErrOrderCreateFailed
			}
			game = g
		}
		if game == nil || !game.IsActive {
			return nil, ErrGameNotAvailable
		}
		if !game.Purchasable(cartItem.Quantity) {
			return nil, NewInsufficientStockError(game.Title)
		}

		unitPrice := game.EffectivePrice()
		lineTotal := unitPrice.MulQuantity(cartItem.Quantity)
		itemsAmount = itemsAmount.Add(lineTotal.Decimal).Round(2)

		plans = append(plans, orderLinePlan{
			Game: game,
			Item: models.OrderItem{
				GameID:     game.ID,
				Title:      game.Title,
				Platform:   game.Platform,
				Image:      game.Image,
				UnitPrice:  unitPrice,
				Quantity:   cartItem.Quantity,
				TotalPrice: lineTotal,
			},
			Quantity: cartItem.Quantity,
		})
	}

	taxAmount := itemsAmount.Mul(decimal.NewFromFloat(s.orderCfg.TaxRate)).Round(2)
	shippingAmount := s.resolveShippingAmount(itemsAmount)
	totalAmount := itemsAmount.Add(taxAmount).Add(shippingAmount).Round(2)

	now := time.Now()
	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		Status:          constants.OrderStatusPending,
		Currency:        s.resolveSiteCurrency(),
		ItemsAmount:     models.NewMoneyFromDecimal(itemsAmount),
		TaxAmount:       models.NewMoneyFromDecimal(taxAmount),
		ShippingAmount:  models.NewMoneyFromDecimal(shippingAmount),
		TotalAmount:     models.NewMoneyFromDecimal(totalAmount),
		PaymentMethod:   paymentMethod,
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		ShippingCity:    strings.TrimSpace(input.ShippingCity),
		ShippingZip:     strings.TrimSpace(input.ShippingZip),
		ShippingCountry: strings.TrimSpace(input.ShippingCountry),
		ClientIP:        strings.TrimSpace(input.ClientIP),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	orderItems := make([]models.OrderItem, 0, len(plans))
	for _, plan := range plans {
		orderItems = append(orderItems, plan.Item)
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		gameRepo := s.gameRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)

		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		for _, plan := range plans {
			affected, err := gameRepo.DecrementStock(plan.Game.ID, plan.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return NewInsufficientStockError(plan.Game.Title)
			}
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			return nil, err
		}
		return nil, ErrOrderCreateFailed
	}
	order.Items = orderItems

	if expireMinutes := s.resolveExpireMinutes(); expireMinutes > 0 && s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderTimeoutCancel(queue.OrderTimeoutCancelPayload{
			OrderID: order.ID,
		}, time.Duration(expireMinutes)*time.Minute); err != nil {
			logger.Warnw("order_enqueue_timeout_cancel_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", err,
			)
		}
	}

	s.notifyOrderEvent(order.ID, constants.NotificationEventOrderConfirmed, order.Status)
	return order, nil
}

// PayOrder 支付订单
// 记录支付回执并进入 processing 状态
func (s *OrderService) PayOrder(orderID uint, userID uint, paymentResult models.JSON) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.IsPaid {
		return nil, ErrOrderAlreadyPaid
	}
	if !isTransitionAllowed(order.Status, constants.OrderStatusProcessing) {
		return nil, ErrOrderTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_paid":    true,
		"paid_at":    now,
		"updated_at": now,
	}
	if len(paymentResult) > 0 {
		updates["payment_result"] = paymentResult
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusProcessing, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	order.Status = constants.OrderStatusProcessing
	order.IsPaid = true
	order.PaidAt = &now
	order.UpdatedAt = now
	if len(paymentResult) > 0 {
		order.PaymentResult = paymentResult
	}

	s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, order.Status)
	return order, nil
}

// CancelOrder 用户取消订单
// 仅允许在发货前取消，库存随取消回补
func (s *OrderService) CancelOrder(orderID uint, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	switch order.Status {
	case constants.OrderStatusPending, constants.OrderStatusProcessing:
	default:
		return nil, ErrOrderCancelNotAllowed
	}

	if err := s.cancelOrder(order); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, constants.OrderStatusCancelled)
	return order, nil
}

// ApproveOrder 管理端审核通过订单
// 记录审核时间与审核人信息
func (s *OrderService) ApproveOrder(orderID uint, approverName, approverEmail string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isTransitionAllowed(order.Status, constants.OrderStatusApproved) {
		return nil, ErrOrderTransitionInvalid
	}

	now := time.Now()
	updates := map[string]interface{}{
		"approved_at":       now,
		"approved_by_name":  strings.TrimSpace(approverName),
		"approved_by_email": strings.TrimSpace(approverEmail),
		"updated_at":        now,
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusApproved, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	order.Status = constants.OrderStatusApproved
	order.ApprovedAt = &now
	order.ApprovedByName = strings.TrimSpace(approverName)
	order.ApprovedByEmail = strings.TrimSpace(approverEmail)
	order.UpdatedAt = now

	s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, order.Status)
	return order, nil
}

// UpdateOrderStatus 管理端更新订单状态
// 目标状态必须属于已知枚举且在流转表中允许
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := normalizeOrderStatus(targetStatus)
	if !isValidOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderTransitionInvalid
	}

	if target == constants.OrderStatusCancelled {
		if err := s.cancelOrder(order); err != nil {
			return nil, ErrOrderUpdateFailed
		}
		s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, constants.OrderStatusCancelled)
		return order, nil
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if target == constants.OrderStatusDelivered {
		updates["delivered_at"] = now
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	order.Status = target
	order.UpdatedAt = now
	if v, ok := updates["delivered_at"]; ok {
		if t, ok := v.(time.Time); ok {
			order.DeliveredAt = &t
		}
	}

	s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, order.Status)
	return order, nil
}

// CancelExpiredOrder 超时取消未支付订单
// 订单已支付或已离开 pending 时为空操作
func (s *OrderService) CancelExpiredOrder(orderID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.IsPaid || order.Status != constants.OrderStatusPending {
		return order, nil
	}

	if err := s.cancelOrder(order); err != nil {
		return nil, ErrOrderUpdateFailed
	}
	s.notifyOrderEvent(order.ID, constants.NotificationEventStatusChanged, constants.OrderStatusCancelled)
	return order, nil
}

// cancelOrder 取消订单并回补库存
func (s *OrderService) cancelOrder(order *models.Order) error {
	now := time.Now()
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		gameRepo := s.gameRepo.WithTx(tx)

		updates := map[string]interface{}{
			"cancelled_at": now,
			"updated_at":   now,
		}
		if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled, updates); err != nil {
			return err
		}
		for _, item := range order.Items {
			if item.GameID == 0 {
				continue
			}
			if _, err := gameRepo.RestoreStock(item.GameID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	order.Status = constants.OrderStatusCancelled
	order.CancelledAt = &now
	order.UpdatedAt = now
	return nil
}

// notifyOrderEvent 入队订单通知，队列不可用时降级为同步发送
func (s *OrderService) notifyOrderEvent(orderID uint, event, status string) {
	skipped, err := enqueueOrderNotificationIfEligible(s.orderRepo, s.queueClient, orderID, event, status)
	if skipped || err == nil {
		return
	}
	if !errors.Is(err, ErrQueueUnavailable) {
		logger.Warnw("order_enqueue_notification_failed",
			"order_id", orderID,
			"event", event,
			"status", status,
			"error", err,
		)
	}
	if s.notifier == nil {
		return
	}
	if dispatchErr := s.notifier.DispatchOrderEvent(orderID, event, status); dispatchErr != nil {
		logger.Warnw("order_notification_inline_dispatch_failed",
			"order_id", orderID,
			"event", event,
			"status", status,
			"error", dispatchErr,
		)
	}
}

// GetOrderByUser 获取用户订单详情
func (s *OrderService) GetOrderByUser(orderID uint, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetOrderByUserOrderNo 获取用户订单详情（按订单号）
func (s *OrderService) GetOrderByUserOrderNo(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrdersByUser 获取用户订单列表
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrOrderFetchFailed
	}
	return s.orderRepo.ListByUser(filter)
}

// ListOrdersForAdmin 管理端订单列表
func (s *OrderService) ListOrdersForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetOrderForAdmin 管理端订单详情
func (s *OrderService) GetOrderForAdmin(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) resolveShippingAmount(itemsAmount decimal.Decimal) decimal.Decimal {
	fee := decimal.NewFromFloat(s.orderCfg.ShippingFee)
	if fee.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	threshold := decimal.NewFromFloat(s.orderCfg.FreeShippingOver)
	if threshold.GreaterThan(decimal.Zero) && itemsAmount.GreaterThanOrEqual(threshold) {
		return decimal.Zero
	}
	return fee.Round(2)
}

func (s *OrderService) resolveSiteCurrency() string {
	currency := strings.ToUpper(strings.TrimSpace(s.orderCfg.Currency))
	if currency == "" {
		return constants.SiteCurrencyDefault
	}
	return currency
}

func (s *OrderService) resolveExpireMinutes() int {
	return s.orderCfg.PaymentExpireMinutes
}

func normalizePaymentMethod(method string) string {
	normalized := strings.ToLower(strings.TrimSpace(method))
	for _, supported := range constants.SupportedPaymentMethods {
		if normalized == supported {
			return supported
		}
	}
	return ""
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("GB%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
