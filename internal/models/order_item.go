package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表
// GameID 为弱引用，游戏删除后订单项保留快照，消费方需按缺失处理
type OrderItem struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // 主键
	OrderID    uint           `gorm:"index;not null" json:"order_id"`                           // 订单ID
	GameID     uint           `gorm:"index;not null" json:"game_id"`                            // 游戏ID（弱引用）
	Title      string         `gorm:"not null" json:"title"`                                    // 标题快照
	Platform   string         `gorm:"type:varchar(20)" json:"platform"`                         // 平台快照
	Image      string         `gorm:"type:varchar(500)" json:"image"`                           // 封面快照
	UnitPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 下单时单价（冻结）
	Quantity   int            `gorm:"not null" json:"quantity"`                                 // 数量
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 小计
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
