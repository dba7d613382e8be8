package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gamebazaar/internal/cache"
	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/i18n"
	"github.com/gamebazaar/internal/logger"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
)

// notificationDedupeTTL 同一订单事件的通知去重窗口
const notificationDedupeTTL = 24 * time.Hour

// NotificationDispatcher 订单通知分发接口
// 队列 worker 与降级同步路径使用同一实现
type NotificationDispatcher interface {
	DispatchOrderEvent(orderID uint, event, status string) error
}

// NotificationService 订单邮件通知服务
type NotificationService struct {
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	emailService *EmailService
	renderer     ReceiptRenderer
	siteName     string

	dedupeAcquire func(key string) (bool, error)
	dedupeRelease func(key string)
}

// NewNotificationService 创建通知服务
func NewNotificationService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, emailService *EmailService, renderer ReceiptRenderer, siteName string) *NotificationService {
	if strings.TrimSpace(siteName) == "" {
		siteName = "GameBazaar"
	}
	return &NotificationService{
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		emailService: emailService,
		renderer:     renderer,
		siteName:     siteName,
		dedupeAcquire: func(key string) (bool, error) {
			return cache.SetNX(context.Background(), key, "1", notificationDedupeTTL)
		},
		dedupeRelease: func(key string) {
			if err := cache.Del(context.Background(), key); err != nil {
				logger.Warnw("order_notification_dedupe_release_failed",
					"key", key,
					"error", err,
				)
			}
		},
	}
}

// DispatchOrderEvent 发送订单事件通知
// 确认与履约节点事件附带 PDF 收据，收据渲染失败时降级为纯文本邮件。
// 同一事件在去重窗口内只发送一次；发送失败时释放去重键以便重试。
func (s *NotificationService) DispatchOrderEvent(orderID uint, event, status string) error {
	if orderID == 0 {
		return nil
	}
	event = strings.TrimSpace(event)
	status = normalizeOrderStatus(status)

	dedupeKey := notificationDedupeKey(orderID, event, status)
	acquired := false
	ok, err := s.dedupeAcquire(dedupeKey)
	if err != nil {
		logger.Warnw("order_notification_dedupe_failed",
			"order_id", orderID,
			"event", event,
			"status", status,
			"error", err,
		)
	} else if !ok {
		return nil
	} else {
		acquired = true
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if acquired {
			s.dedupeRelease(dedupeKey)
		}
		return err
	}
	if order == nil {
		return nil
	}

	user, err := s.userRepo.GetByID(order.UserID)
	if err != nil {
		if acquired {
			s.dedupeRelease(dedupeKey)
		}
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return nil
	}

	locale := i18n.Normalize(user.Locale)
	if locale == "" {
		locale = i18n.DefaultLocale
	}

	subject, body := s.buildOrderEventContent(order, event, status, locale)

	var attachments []EmailAttachment
	if shouldAttachReceipt(event, status) && s.renderer != nil {
		pdfData, renderErr := s.renderer.RenderOrderReceipt(order, user)
		if renderErr != nil {
			logger.Warnw("order_receipt_render_failed",
				"order_id", order.ID,
				"order_no", order.OrderNo,
				"error", renderErr,
			)
		} else {
			attachments = append(attachments, EmailAttachment{
				Filename:    fmt.Sprintf("receipt-%s.pdf", order.OrderNo),
				ContentType: "application/pdf",
				Data:        pdfData,
			})
		}
	}

	if err := s.emailService.SendEmail(user.Email, subject, body, attachments); err != nil {
		if err == ErrEmailServiceDisabled || err == ErrEmailServiceNotConfigured {
			logger.Infow("order_notification_email_skipped",
				"order_id", order.ID,
				"event", event,
				"reason", err.Error(),
			)
			return nil
		}
		if acquired {
			s.dedupeRelease(dedupeKey)
		}
		return err
	}
	return nil
}

// shouldAttachReceipt 判断事件是否附带 PDF 收据。
// 下单确认与审核、发货、签收节点都会附上收据。
func shouldAttachReceipt(event, status string) bool {
	if event == constants.NotificationEventOrderConfirmed {
		return true
	}
	if event != constants.NotificationEventStatusChanged {
		return false
	}
	switch status {
	case constants.OrderStatusApproved, constants.OrderStatusShipped, constants.OrderStatusDelivered:
		return true
	}
	return false
}

func (s *NotificationService) buildOrderEventContent(order *models.Order, event, status, locale string) (string, string) {
	statusLabel := orderStatusLabel(locale, status)
	amount := fmt.Sprintf("%s %s", order.TotalAmount.String(), strings.TrimSpace(order.Currency))

	if event == constants.NotificationEventOrderConfirmed {
		subject := i18n.Sprintf(locale, "email.order_confirmed.subject", s.siteName, order.OrderNo)
		body := i18n.Sprintf(locale, "email.order_confirmed.body", order.OrderNo, amount)
		return subject, body
	}

	subject := i18n.Sprintf(locale, "email.order_status.subject", s.siteName, statusLabel)
	body := i18n.Sprintf(locale, "email.order_status.body", order.OrderNo, statusLabel, amount)
	return subject, body
}

func orderStatusLabel(locale, status string) string {
	key := "order.status." + normalizeOrderStatus(status)
	label := i18n.T(locale, key)
	if label == key {
		return status
	}
	return label
}

func notificationDedupeKey(orderID uint, event, status string) string {
	return fmt.Sprintf("notify:order:%d:%s:%s", orderID, event, status)
}
