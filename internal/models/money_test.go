package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMulQuantity(t *testing.T) {
	price := NewMoneyFromDecimal(decimal.NewFromFloat(34.99))
	if got := price.MulQuantity(2).String(); got != "69.98" {
		t.Fatalf("line total want 69.98 got %s", got)
	}
	if got := price.MulQuantity(0).String(); got != "0.00" {
		t.Fatalf("zero quantity want 0.00 got %s", got)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	price := NewMoneyFromDecimal(decimal.NewFromFloat(59.9))
	data, err := json.Marshal(price)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"59.90"` {
		t.Fatalf("marshal want \"59.90\" got %s", data)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"19.99"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	if fromString.String() != "19.99" {
		t.Fatalf("unmarshal string want 19.99 got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`49.999`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if fromNumber.String() != "50.00" {
		t.Fatalf("unmarshal number want 50.00 got %s", fromNumber.String())
	}
}

func TestGameEffectivePrice(t *testing.T) {
	price := NewMoneyFromDecimal(decimal.NewFromFloat(49.99))
	discount := NewMoneyFromDecimal(decimal.NewFromFloat(34.99))

	game := &Game{Price: price, DiscountPrice: &discount}
	if got := game.EffectivePrice().String(); got != "34.99" {
		t.Fatalf("effective price want discounted 34.99 got %s", got)
	}

	game.DiscountPrice = nil
	if got := game.EffectivePrice().String(); got != "49.99" {
		t.Fatalf("effective price want 49.99 got %s", got)
	}

	// 折扣价高于原价时忽略折扣
	tooHigh := NewMoneyFromDecimal(decimal.NewFromFloat(59.99))
	game.DiscountPrice = &tooHigh
	if got := game.EffectivePrice().String(); got != "49.99" {
		t.Fatalf("invalid discount should be ignored, got %s", got)
	}
}

func TestGamePurchasable(t *testing.T) {
	game := &Game{StockCount: 3, InStock: true, IsActive: true}
	if !game.Purchasable(3) {
		t.Fatalf("quantity equal to stock should be purchasable")
	}
	if game.Purchasable(4) {
		t.Fatalf("quantity over stock should not be purchasable")
	}
	game.IsActive = false
	if game.Purchasable(1) {
		t.Fatalf("inactive game should not be purchasable")
	}
}
