package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/models"

	"github.com/go-pdf/fpdf"
)

// ReceiptRenderer 订单收据渲染接口
type ReceiptRenderer interface {
	RenderOrderReceipt(order *models.Order, user *models.User) ([]byte, error)
}

// PDFReceiptRenderer 基于 fpdf 的收据渲染实现
type PDFReceiptRenderer struct {
	siteName string
}

// NewPDFReceiptRenderer 创建收据渲染器
func NewPDFReceiptRenderer(siteName string) *PDFReceiptRenderer {
	if strings.TrimSpace(siteName) == "" {
		siteName = "GameBazaar"
	}
	return &PDFReceiptRenderer{siteName: siteName}
}

// RenderOrderReceipt 渲染订单收据 PDF
// 订单项为金额与标题快照，游戏缺失时使用占位标题
func (r *PDFReceiptRenderer) RenderOrderReceipt(order *models.Order, user *models.User) ([]byte, error) {
	if order == nil {
		return nil, ErrOrderNotFound
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", order.OrderNo), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, r.siteName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order No: %s", order.OrderNo), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Order Date: %s", order.CreatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	if user != nil {
		customer := strings.TrimSpace(user.DisplayName)
		if customer == "" {
			customer = user.Email
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s <%s>", customer, user.Email), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Payment Method: %s", strings.ToUpper(order.PaymentMethod)), "", 1, "L", false, 0, "")
	if strings.TrimSpace(order.ShippingAddress) != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Ship To: %s", formatShippingLine(order)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(80, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Platform", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			title = constants.UnavailableGameTitle
		}
		pdf.CellFormat(80, 8, truncateReceiptText(title, 44), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strings.ToUpper(item.Platform), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, item.UnitPrice.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, item.TotalPrice.String(), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeAmountLine := func(label string, value string) {
		pdf.CellFormat(125, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, value, "", 1, "R", false, 0, "")
	}
	currency := strings.TrimSpace(order.Currency)
	writeAmountLine("Subtotal:", fmt.Sprintf("%s %s", order.ItemsAmount.String(), currency))
	writeAmountLine("Tax:", fmt.Sprintf("%s %s", order.TaxAmount.String(), currency))
	writeAmountLine("Shipping:", fmt.Sprintf("%s %s", order.ShippingAmount.String(), currency))
	pdf.SetFont("Helvetica", "B", 11)
	writeAmountLine("Total:", fmt.Sprintf("%s %s", order.TotalAmount.String(), currency))

	if order.ApprovedAt != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		approver := strings.TrimSpace(order.ApprovedByName)
		if approver == "" {
			approver = order.ApprovedByEmail
		}
		pdf.CellFormat(0, 5, fmt.Sprintf("Approved by %s on %s", approver, order.ApprovedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated by %s on %s. Thank you for your purchase.", r.siteName, time.Now().Format("2006-01-02")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatShippingLine(order *models.Order) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{order.ShippingAddress, order.ShippingCity, order.ShippingZip, order.ShippingCountry} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

func truncateReceiptText(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
