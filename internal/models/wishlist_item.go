package models

import (
	"time"

	"gorm.io/gorm"
)

// WishlistItem 心愿单项
type WishlistItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                       // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_wishlist_user_game" json:"user_id"` // 用户ID
	GameID    uint           `gorm:"not null;uniqueIndex:idx_wishlist_user_game" json:"game_id"` // 游戏ID
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Game *Game `gorm:"foreignKey:GameID" json:"game,omitempty"` // 关联游戏
}

// TableName 指定表名
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
