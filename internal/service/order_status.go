package service

import (
	"strings"

	"github.com/gamebazaar/internal/constants"
)

// allowedTransitions 订单状态流转表
// 不在表中的流转一律拒绝，delivered 与 cancelled 为终态
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusApproved:  true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusApproved: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
}

// isValidOrderStatus 状态值是否属于已知枚举
func isValidOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending,
		constants.OrderStatusProcessing,
		constants.OrderStatusApproved,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// isTransitionAllowed 流转是否允许
func isTransitionAllowed(from, to string) bool {
	targets, ok := allowedTransitions[normalizeOrderStatus(from)]
	if !ok {
		return false
	}
	return targets[normalizeOrderStatus(to)]
}

// isTerminalStatus 是否终态
func isTerminalStatus(status string) bool {
	switch normalizeOrderStatus(status) {
	case constants.OrderStatusDelivered, constants.OrderStatusCancelled:
		return true
	default:
		return false
	}
}

func normalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
