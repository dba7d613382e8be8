package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项
// 价格为加入购物车时的快照，不随商品改价变化
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                     // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_game" json:"user_id"`   // 用户ID
	GameID    uint           `gorm:"not null;uniqueIndex:idx_cart_user_game" json:"game_id"`   // 游戏ID
	Quantity  int            `gorm:"not null" json:"quantity"`                                 // 数量
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`      // 加购时单价快照
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"` // 关联游戏
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
