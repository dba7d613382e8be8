package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
// 订单项与金额在创建后不再变化，仅状态与支付字段可更新
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                        // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                               // 用户ID
	Status          string         `gorm:"index;not null" json:"status"`                                // 订单状态
	Currency        string         `gorm:"not null" json:"currency"`                                    // 币种
	ItemsAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"items_amount"`   // 商品小计
	TaxAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax_amount"`     // 税费
	ShippingAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_amount"` // 运费
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`   // 实付金额
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`             // 支付方式
	PaymentResult   JSON           `gorm:"type:json" json:"payment_result,omitempty"`                   // 外部网关回执
	IsPaid          bool           `gorm:"not null;default:false;index" json:"is_paid"`                 // 是否已支付
	PaidAt          *time.Time     `gorm:"index" json:"paid_at"`                                        // 支付时间
	ShippingAddress string         `gorm:"type:varchar(500);not null" json:"shipping_address"`          // 收货地址
	ShippingCity    string         `gorm:"type:varchar(100)" json:"shipping_city"`                      // 城市
	ShippingZip     string         `gorm:"type:varchar(20)" json:"shipping_zip"`                        // 邮编
	ShippingCountry string         `gorm:"type:varchar(100)" json:"shipping_country"`                   // 国家
	ApprovedAt      *time.Time     `gorm:"index" json:"approved_at"`                                    // 审核通过时间
	ApprovedByName  string         `gorm:"type:varchar(100)" json:"approved_by_name,omitempty"`         // 审核人姓名
	ApprovedByEmail string         `gorm:"type:varchar(200)" json:"approved_by_email,omitempty"`        // 审核人邮箱
	DeliveredAt     *time.Time     `gorm:"index" json:"delivered_at"`                                   // 送达时间
	CancelledAt     *time.Time     `gorm:"index" json:"cancelled_at"`                                   // 取消时间
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                 // 下单客户端IP
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
