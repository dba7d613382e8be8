package service

import (
	"strings"

	"github.com/gamebazaar/internal/queue"
	"github.com/gamebazaar/internal/repository"
)

// enqueueOrderNotificationIfEligible 根据收件邮箱决定是否入队订单通知任务。
// 返回值 skipped 表示任务被策略跳过（例如用户无邮箱）；
// 队列未配置时返回 ErrQueueUnavailable，调用方降级为同步发送。
func enqueueOrderNotificationIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, orderID uint, event, status string) (skipped bool, err error) {
	if orderID == 0 {
		return true, nil
	}
	if orderRepo != nil {
		receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
		if lookupErr == nil && strings.TrimSpace(receiverEmail) == "" {
			return true, nil
		}
	}
	if queueClient == nil {
		return false, ErrQueueUnavailable
	}

	if err := queueClient.EnqueueOrderNotification(queue.OrderNotificationPayload{
		OrderID: orderID,
		Event:   strings.TrimSpace(event),
		Status:  strings.TrimSpace(status),
	}); err != nil {
		return false, err
	}
	return false, nil
}
