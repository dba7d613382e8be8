package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T, orderCfg config.OrderConfig) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Game{}, &models.User{}, &models.Order{}, &models.OrderItem{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB = db

	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewGameRepository(db),
		repository.NewCartRepository(db),
		nil,
		nil,
		orderCfg,
	)
	return svc, db
}

func defaultOrderConfig() config.OrderConfig {
	return config.OrderConfig{
		Currency:         "USD",
		TaxRate:          0.10,
		ShippingFee:      5,
		FreeShippingOver: 100,
	}
}

func seedGame(t *testing.T, db *gorm.DB, slug string, price float64, stock int) *models.Game {
	t.Helper()
	game := &models.Game{
		CategoryID: 1,
		Slug:       slug,
		Title:      "Game " + slug,
		Genre:      "rpg",
		Platform:   "pc",
		Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		StockCount: stock,
		InStock:    stock > 0,
		IsActive:   true,
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("seed game failed: %v", err)
	}
	return game
}

func seedCartItem(t *testing.T, db *gorm.DB, userID uint, game *models.Game, quantity int) {
	t.Helper()
	item := &models.CartItem{
		UserID:   userID,
		GameID:   game.ID,
		Quantity: quantity,
		Price:    game.EffectivePrice(),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("seed cart item failed: %v", err)
	}
}

func TestCreateOrderFromCart(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 101

	game := seedGame(t, db, "create-order-happy", 60, 5)
	seedCartItem(t, db, userID, game, 2)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   "Credit_Card",
		ShippingAddress: " 1 Main St ",
		ShippingCity:    "Springfield",
		ShippingCountry: "US",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending got %s", order.Status)
	}
	if !strings.HasPrefix(order.OrderNo, "GB") || len(order.OrderNo) != 22 {
		t.Fatalf("order no format unexpected: %s", order.OrderNo)
	}
	if order.PaymentMethod != constants.PaymentMethodCreditCard {
		t.Fatalf("payment method want credit_card got %s", order.PaymentMethod)
	}
	if order.Currency != "USD" {
		t.Fatalf("currency want USD got %s", order.Currency)
	}
	if order.ShippingAddress != "1 Main St" {
		t.Fatalf("shipping address want trimmed got %q", order.ShippingAddress)
	}

	// 120 美元商品，10% 税，满 100 免运费
	if order.ItemsAmount.String() != "120.00" {
		t.Fatalf("items amount want 120.00 got %s", order.ItemsAmount.String())
	}
	if order.TaxAmount.String() != "12.00" {
		t.Fatalf("tax amount want 12.00 got %s", order.TaxAmount.String())
	}
	if order.ShippingAmount.String() != "0.00" {
		t.Fatalf("shipping amount want 0.00 got %s", order.ShippingAmount.String())
	}
	if order.TotalAmount.String() != "132.00" {
		t.Fatalf("total amount want 132.00 got %s", order.TotalAmount.String())
	}

	if len(order.Items) != 1 {
		t.Fatalf("order items want 1 got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.GameID != game.ID || item.Title != game.Title || item.Quantity != 2 {
		t.Fatalf("order item snapshot unexpected: %+v", item)
	}
	if item.UnitPrice.String() != "60.00" || item.TotalPrice.String() != "120.00" {
		t.Fatalf("order item price snapshot want 60.00/120.00 got %s/%s", item.UnitPrice.String(), item.TotalPrice.String())
	}

	var gotGame models.Game
	if err := db.First(&gotGame, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if gotGame.StockCount != 3 {
		t.Fatalf("stock after order want 3 got %d", gotGame.StockCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("cart after order want empty got %d items", cartCount)
	}
}

func TestCreateOrderShippingBelowThreshold(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 102

	game := seedGame(t, db, "create-order-shipping", 19.99, 3)
	seedCartItem(t, db, userID, game, 1)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodPaypal,
		ShippingAddress: "2 Side St",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ItemsAmount.String() != "19.99" {
		t.Fatalf("items amount want 19.99 got %s", order.ItemsAmount.String())
	}
	if order.TaxAmount.String() != "2.00" {
		t.Fatalf("tax amount want 2.00 got %s", order.TaxAmount.String())
	}
	if order.ShippingAmount.String() != "5.00" {
		t.Fatalf("shipping amount want 5.00 got %s", order.ShippingAmount.String())
	}
	if order.TotalAmount.String() != "26.99" {
		t.Fatalf("total amount want 26.99 got %s", order.TotalAmount.String())
	}
}

func TestCreateOrderDiscountPriceSnapshot(t *testing.T) {
	svc, db := setupOrderServiceTest(t, config.OrderConfig{Currency: "USD"})
	const userID = 103

	game := seedGame(t, db, "create-order-discount", 49.99, 4)
	discount := models.NewMoneyFromDecimal(decimal.NewFromFloat(34.99))
	if err := db.Model(game).Update("discount_price", discount).Error; err != nil {
		t.Fatalf("set discount failed: %v", err)
	}
	seedCartItem(t, db, userID, game, 2)

	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodCOD,
		ShippingAddress: "3 Discount Ave",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Items[0].UnitPrice.String() != "34.99" {
		t.Fatalf("unit price want discounted 34.99 got %s", order.Items[0].UnitPrice.String())
	}
	if order.ItemsAmount.String() != "69.98" {
		t.Fatalf("items amount want 69.98 got %s", order.ItemsAmount.String())
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 104

	if _, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   "bitcoin",
		ShippingAddress: "4 Somewhere",
	}); !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("unsupported payment method want ErrPaymentMethodInvalid got %v", err)
	}

	if _, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodPaypal,
		ShippingAddress: "   ",
	}); !errors.Is(err, ErrShippingAddressRequired) {
		t.Fatalf("blank address want ErrShippingAddressRequired got %v", err)
	}

	if _, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodPaypal,
		ShippingAddress: "4 Somewhere",
	}); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart want ErrCartEmpty got %v", err)
	}

	game := seedGame(t, db, "create-order-inactive", 10, 5)
	if err := db.Model(game).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate game failed: %v", err)
	}
	seedCartItem(t, db, userID, game, 1)
	if _, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodPaypal,
		ShippingAddress: "4 Somewhere",
	}); !errors.Is(err, ErrGameNotAvailable) {
		t.Fatalf("inactive game want ErrGameNotAvailable got %v", err)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 105

	game := seedGame(t, db, "create-order-no-stock", 30, 1)
	seedCartItem(t, db, userID, game, 2)

	_, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodCreditCard,
		ShippingAddress: "5 Stockout Rd",
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order should persist, got %d", orderCount)
	}

	var gotGame models.Game
	if err := db.First(&gotGame, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if gotGame.StockCount != 1 {
		t.Fatalf("stock should be unchanged, want 1 got %d", gotGame.StockCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 1 {
		t.Fatalf("cart should be unchanged, want 1 got %d", cartCount)
	}
}

func mustCreateOrder(t *testing.T, svc *OrderService, db *gorm.DB, userID uint, slug string, stock int) (*models.Order, *models.Game) {
	t.Helper()
	game := seedGame(t, db, slug, 40, stock)
	seedCartItem(t, db, userID, game, 1)
	order, err := svc.CreateOrder(CreateOrderInput{
		UserID:          userID,
		PaymentMethod:   constants.PaymentMethodCreditCard,
		ShippingAddress: "6 Flow St",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order, game
}

func TestPayOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 106

	order, _ := mustCreateOrder(t, svc, db, userID, "pay-order", 3)

	paid, err := svc.PayOrder(order.ID, userID, models.JSON{"transaction_id": "tx-1"})
	if err != nil {
		t.Fatalf("pay order failed: %v", err)
	}
	if paid.Status != constants.OrderStatusProcessing {
		t.Fatalf("status want processing got %s", paid.Status)
	}
	if !paid.IsPaid || paid.PaidAt == nil {
		t.Fatalf("paid flags not set: is_paid=%v paid_at=%v", paid.IsPaid, paid.PaidAt)
	}

	var got models.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if got.Status != constants.OrderStatusProcessing || !got.IsPaid {
		t.Fatalf("persisted order want processing/paid got %s/%v", got.Status, got.IsPaid)
	}

	if _, err := svc.PayOrder(order.ID, userID, nil); !errors.Is(err, ErrOrderAlreadyPaid) {
		t.Fatalf("repeat pay want ErrOrderAlreadyPaid got %v", err)
	}

	if _, err := svc.PayOrder(order.ID, userID+1, nil); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("pay foreign order want ErrOrderNotFound got %v", err)
	}
}

func TestCancelOrderRestoresStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 107

	order, game := mustCreateOrder(t, svc, db, userID, "cancel-order", 2)

	var afterOrder models.Game
	if err := db.First(&afterOrder, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if afterOrder.StockCount != 1 {
		t.Fatalf("stock after order want 1 got %d", afterOrder.StockCount)
	}

	cancelled, err := svc.CancelOrder(order.ID, userID)
	if err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("cancel state unexpected: status=%s cancelled_at=%v", cancelled.Status, cancelled.CancelledAt)
	}

	var afterCancel models.Game
	if err := db.First(&afterCancel, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if afterCancel.StockCount != 2 {
		t.Fatalf("stock after cancel want 2 got %d", afterCancel.StockCount)
	}
	if !afterCancel.InStock {
		t.Fatalf("in_stock after cancel want true got false")
	}

	if _, err := svc.CancelOrder(order.ID, userID); !errors.Is(err, ErrOrderCancelNotAllowed) {
		t.Fatalf("cancel terminal order want ErrOrderCancelNotAllowed got %v", err)
	}
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 108

	order, _ := mustCreateOrder(t, svc, db, userID, "status-flow", 3)

	if _, err := svc.UpdateOrderStatus(order.ID, "refunded"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("unknown status want ErrOrderStatusInvalid got %v", err)
	}
	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("pending->shipped want ErrOrderTransitionInvalid got %v", err)
	}

	// 同状态为幂等空操作
	same, err := svc.UpdateOrderStatus(order.ID, " Pending ")
	if err != nil {
		t.Fatalf("same status update failed: %v", err)
	}
	if same.Status != constants.OrderStatusPending {
		t.Fatalf("same status want pending got %s", same.Status)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("pending->processing failed: %v", err)
	}

	if _, err := svc.ApproveOrder(order.ID, " Alice ", " alice@example.com "); err != nil {
		t.Fatalf("approve order failed: %v", err)
	}
	var approved models.Order
	if err := db.First(&approved, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if approved.Status != constants.OrderStatusApproved || approved.ApprovedAt == nil {
		t.Fatalf("approve state unexpected: status=%s approved_at=%v", approved.Status, approved.ApprovedAt)
	}
	if approved.ApprovedByName != "Alice" || approved.ApprovedByEmail != "alice@example.com" {
		t.Fatalf("approver snapshot want Alice/alice@example.com got %s/%s", approved.ApprovedByName, approved.ApprovedByEmail)
	}

	if _, err := svc.ApproveOrder(order.ID, "Alice", "alice@example.com"); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("repeat approve want ErrOrderTransitionInvalid got %v", err)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped); err != nil {
		t.Fatalf("approved->shipped failed: %v", err)
	}
	delivered, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("shipped->delivered failed: %v", err)
	}
	if delivered.DeliveredAt == nil {
		t.Fatalf("delivered_at should be set")
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderTransitionInvalid) {
		t.Fatalf("delivered->cancelled want ErrOrderTransitionInvalid got %v", err)
	}
}

func TestAdminCancelRestoresStock(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 109

	order, game := mustCreateOrder(t, svc, db, userID, "admin-cancel", 2)

	cancelled, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", cancelled.Status)
	}

	var gotGame models.Game
	if err := db.First(&gotGame, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if gotGame.StockCount != 2 {
		t.Fatalf("stock after admin cancel want 2 got %d", gotGame.StockCount)
	}
}

func TestCancelExpiredOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 110

	order, game := mustCreateOrder(t, svc, db, userID, "expire-order", 2)

	expired, err := svc.CancelExpiredOrder(order.ID)
	if err != nil {
		t.Fatalf("cancel expired failed: %v", err)
	}
	if expired.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want cancelled got %s", expired.Status)
	}
	var gotGame models.Game
	if err := db.First(&gotGame, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if gotGame.StockCount != 2 {
		t.Fatalf("stock after expire want 2 got %d", gotGame.StockCount)
	}

	// 已支付订单不受超时取消影响
	paidOrder, _ := mustCreateOrder(t, svc, db, userID, "expire-paid-order", 2)
	if _, err := svc.PayOrder(paidOrder.ID, userID, nil); err != nil {
		t.Fatalf("pay order failed: %v", err)
	}
	untouched, err := svc.CancelExpiredOrder(paidOrder.ID)
	if err != nil {
		t.Fatalf("cancel expired paid failed: %v", err)
	}
	if untouched.Status != constants.OrderStatusProcessing {
		t.Fatalf("paid order should stay processing, got %s", untouched.Status)
	}
}

type recordingDispatcher struct {
	orderIDs []uint
	events   []string
	statuses []string
}

func (d *recordingDispatcher) DispatchOrderEvent(orderID uint, event, status string) error {
	d.orderIDs = append(d.orderIDs, orderID)
	d.events = append(d.events, event)
	d.statuses = append(d.statuses, status)
	return nil
}

func TestCreateOrderDispatchesInlineWithoutQueue(t *testing.T) {
	svc, db := setupOrderServiceTest(t, defaultOrderConfig())
	const userID = 111

	dispatcher := &recordingDispatcher{}
	svc.notifier = dispatcher

	user := &models.User{ID: userID, Email: "buyer@example.com", PasswordHash: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	order, _ := mustCreateOrder(t, svc, db, userID, "inline-notify", 2)

	if len(dispatcher.events) != 1 {
		t.Fatalf("inline dispatch want 1 call got %d", len(dispatcher.events))
	}
	if dispatcher.orderIDs[0] != order.ID || dispatcher.events[0] != constants.NotificationEventOrderConfirmed {
		t.Fatalf("dispatch args unexpected: order=%d event=%s", dispatcher.orderIDs[0], dispatcher.events[0])
	}
	if dispatcher.statuses[0] != constants.OrderStatusPending {
		t.Fatalf("dispatch status want pending got %s", dispatcher.statuses[0])
	}

	// 用户无邮箱时按策略跳过，不触发同步发送
	const mutedUserID = 112
	mustCreateOrder(t, svc, db, mutedUserID, "inline-notify-muted", 2)
	if len(dispatcher.events) != 1 {
		t.Fatalf("dispatch without recipient want 1 call got %d", len(dispatcher.events))
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"credit_card", constants.PaymentMethodCreditCard},
		{" PayPal ", constants.PaymentMethodPaypal},
		{"COD", constants.PaymentMethodCOD},
		{"bitcoin", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePaymentMethod(tc.in); got != tc.want {
			t.Fatalf("normalizePaymentMethod(%q) want %q got %q", tc.in, tc.want, got)
		}
	}
}
