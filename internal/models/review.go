package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 游戏评价表
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                     // 主键
	UserID    uint           `gorm:"not null;uniqueIndex:idx_review_user_game" json:"user_id"` // 用户ID
	GameID    uint           `gorm:"not null;uniqueIndex:idx_review_user_game" json:"game_id"` // 游戏ID
	Rating    int            `gorm:"not null" json:"rating"`                                   // 评分（1-5）
	Title     string         `gorm:"type:varchar(200)" json:"title"`                           // 标题
	Comment   string         `gorm:"type:text" json:"comment"`                                 // 评论内容
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 关联用户
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
