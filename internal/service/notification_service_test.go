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

type stubReceiptRenderer struct {
	calls int
	fail  bool
}

func (r *stubReceiptRenderer) RenderOrderReceipt(order *models.Order, user *models.User) ([]byte, error) {
	r.calls++
	if r.fail {
		return nil, errors.New("render failed")
	}
	return []byte("%PDF-1.4 stub"), nil
}

type memoryDedupe struct {
	keys     map[string]bool
	released []string
}

func newMemoryDedupe() *memoryDedupe {
	return &memoryDedupe{keys: map[string]bool{}}
}

func (m *memoryDedupe) acquire(key string) (bool, error) {
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	return true, nil
}

func (m *memoryDedupe) release(key string) {
	delete(m.keys, key)
	m.released = append(m.released, key)
}

func setupNotificationServiceTest(t *testing.T, emailCfg *config.EmailConfig) (*NotificationService, *gorm.DB, *stubReceiptRenderer, *memoryDedupe) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	renderer := &stubReceiptRenderer{}
	svc := NewNotificationService(
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		NewEmailService(emailCfg),
		renderer,
		"GameBazaar",
	)
	dedupe := newMemoryDedupe()
	svc.dedupeAcquire = dedupe.acquire
	svc.dedupeRelease = dedupe.release
	return svc, db, renderer, dedupe
}

func seedNotifiedOrder(t *testing.T, db *gorm.DB, userID uint, email, status string) *models.Order {
	t.Helper()
	user := &models.User{ID: userID, Email: email, PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	order := &models.Order{
		OrderNo:         fmt.Sprintf("GB-notify-%d", userID),
		UserID:          userID,
		Status:          status,
		Currency:        "USD",
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromFloat(26.99)),
		PaymentMethod:   constants.PaymentMethodCreditCard,
		ShippingAddress: "1 Main St",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestShouldAttachReceipt(t *testing.T) {
	cases := []struct {
		event  string
		status string
		want   bool
	}{
		{constants.NotificationEventOrderConfirmed, constants.OrderStatusPending, true},
		{constants.NotificationEventStatusChanged, constants.OrderStatusApproved, true},
		{constants.NotificationEventStatusChanged, constants.OrderStatusShipped, true},
		{constants.NotificationEventStatusChanged, constants.OrderStatusDelivered, true},
		{constants.NotificationEventStatusChanged, constants.OrderStatusProcessing, false},
		{constants.NotificationEventStatusChanged, constants.OrderStatusCancelled, false},
		{constants.NotificationEventStatusChanged, constants.OrderStatusPending, false},
		{"unknown_event", constants.OrderStatusShipped, false},
	}
	for _, tc := range cases {
		if got := shouldAttachReceipt(tc.event, tc.status); got != tc.want {
			t.Fatalf("shouldAttachReceipt(%q, %q) want %v got %v", tc.event, tc.status, tc.want, got)
		}
	}
}

func TestDispatchOrderEventRendersReceiptOnShipment(t *testing.T) {
	svc, db, renderer, _ := setupNotificationServiceTest(t, &config.EmailConfig{})

	shipped := seedNotifiedOrder(t, db, 401, "shipped@example.com", constants.OrderStatusShipped)
	if err := svc.DispatchOrderEvent(shipped.ID, constants.NotificationEventStatusChanged, constants.OrderStatusShipped); err != nil {
		t.Fatalf("dispatch shipped failed: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("receipt for shipped want 1 render got %d", renderer.calls)
	}

	// processing 节点不附收据
	processing := seedNotifiedOrder(t, db, 402, "processing@example.com", constants.OrderStatusProcessing)
	if err := svc.DispatchOrderEvent(processing.ID, constants.NotificationEventStatusChanged, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("dispatch processing failed: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("no receipt expected for processing, renders got %d", renderer.calls)
	}
}

func TestDispatchOrderEventFallsBackWhenRenderFails(t *testing.T) {
	svc, db, renderer, _ := setupNotificationServiceTest(t, &config.EmailConfig{})
	renderer.fail = true

	order := seedNotifiedOrder(t, db, 405, "fallback@example.com", constants.OrderStatusShipped)
	if err := svc.DispatchOrderEvent(order.ID, constants.NotificationEventStatusChanged, constants.OrderStatusShipped); err != nil {
		t.Fatalf("render failure should degrade to plain text, got %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("renderer want 1 call got %d", renderer.calls)
	}
}

func TestDispatchOrderEventDedupes(t *testing.T) {
	svc, db, renderer, dedupe := setupNotificationServiceTest(t, &config.EmailConfig{})

	order := seedNotifiedOrder(t, db, 403, "dedupe@example.com", constants.OrderStatusPending)
	if err := svc.DispatchOrderEvent(order.ID, constants.NotificationEventOrderConfirmed, constants.OrderStatusPending); err != nil {
		t.Fatalf("first dispatch failed: %v", err)
	}
	if err := svc.DispatchOrderEvent(order.ID, constants.NotificationEventOrderConfirmed, constants.OrderStatusPending); err != nil {
		t.Fatalf("repeat dispatch failed: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("repeat dispatch should be deduped, renders got %d", renderer.calls)
	}
	if len(dedupe.released) != 0 {
		t.Fatalf("successful dispatch should keep dedupe key, released %v", dedupe.released)
	}
}

func TestDispatchOrderEventReleasesDedupeOnSendFailure(t *testing.T) {
	emailCfg := &config.EmailConfig{
		Enabled: true,
		Host:    "smtp.local",
		Port:    2525,
		From:    "noreply@gamebazaar.test",
	}
	svc, db, _, dedupe := setupNotificationServiceTest(t, emailCfg)

	// 无法解析的收件地址在连接 SMTP 前即失败
	order := seedNotifiedOrder(t, db, 404, "broken@@example.com", constants.OrderStatusPending)

	if err := svc.DispatchOrderEvent(order.ID, constants.NotificationEventOrderConfirmed, constants.OrderStatusPending); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("failing send want ErrInvalidEmail got %v", err)
	}
	if len(dedupe.released) != 1 {
		t.Fatalf("failed dispatch should release dedupe key, released %d", len(dedupe.released))
	}
	if len(dedupe.keys) != 0 {
		t.Fatalf("dedupe key should be gone after failure, got %v", dedupe.keys)
	}

	// 重试能再次进入发送，而不是被去重键吞掉
	if err := svc.DispatchOrderEvent(order.ID, constants.NotificationEventOrderConfirmed, constants.OrderStatusPending); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("retry should attempt send again, got %v", err)
	}
}
