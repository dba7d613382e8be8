package service

import (
	"testing"

	"github.com/gamebazaar/internal/constants"
)

func TestOrderStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPending, constants.OrderStatusProcessing, true},
		{constants.OrderStatusPending, constants.OrderStatusCancelled, true},
		{constants.OrderStatusPending, constants.OrderStatusApproved, false},
		{constants.OrderStatusPending, constants.OrderStatusShipped, false},
		{constants.OrderStatusPending, constants.OrderStatusDelivered, false},
		{constants.OrderStatusProcessing, constants.OrderStatusApproved, true},
		{constants.OrderStatusProcessing, constants.OrderStatusCancelled, true},
		{constants.OrderStatusProcessing, constants.OrderStatusShipped, false},
		{constants.OrderStatusProcessing, constants.OrderStatusPending, false},
		{constants.OrderStatusApproved, constants.OrderStatusShipped, true},
		{constants.OrderStatusApproved, constants.OrderStatusCancelled, true},
		{constants.OrderStatusApproved, constants.OrderStatusDelivered, false},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled, true},
		{constants.OrderStatusShipped, constants.OrderStatusApproved, false},
		{constants.OrderStatusDelivered, constants.OrderStatusCancelled, false},
		{constants.OrderStatusCancelled, constants.OrderStatusPending, false},
		{" Pending ", "PROCESSING", true},
		{"unknown", constants.OrderStatusCancelled, false},
	}
	for _, tc := range cases {
		if got := isTransitionAllowed(tc.from, tc.to); got != tc.allowed {
			t.Fatalf("transition %q->%q want %v got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestOrderStatusHelpers(t *testing.T) {
	for _, status := range []string{
		constants.OrderStatusPending,
		constants.OrderStatusProcessing,
		constants.OrderStatusApproved,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCancelled,
	} {
		if !isValidOrderStatus(status) {
			t.Fatalf("status %q should be valid", status)
		}
	}
	if isValidOrderStatus("refunded") {
		t.Fatalf("refunded should be unknown")
	}

	if !isTerminalStatus(constants.OrderStatusDelivered) || !isTerminalStatus(constants.OrderStatusCancelled) {
		t.Fatalf("delivered and cancelled should be terminal")
	}
	if isTerminalStatus(constants.OrderStatusShipped) {
		t.Fatalf("shipped should not be terminal")
	}

	if got := normalizeOrderStatus("  Shipped "); got != constants.OrderStatusShipped {
		t.Fatalf("normalize want shipped got %q", got)
	}
}
