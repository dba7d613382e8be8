package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/shopspring/decimal"
)

// Game 游戏商品表
type Game struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                 // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                    // 分类ID
	Slug          string         `gorm:"uniqueIndex;not null" json:"slug"`                     // 唯一标识
	Title         string         `gorm:"not null;index" json:"title"`                          // 标题
	Description   string         `gorm:"type:text" json:"description"`                         // 描述
	Genre         string         `gorm:"type:varchar(50);index" json:"genre"`                  // 类型（rpg/fps/...）
	Platform      string         `gorm:"type:varchar(20);index" json:"platform"`               // 平台
	Publisher     string         `gorm:"type:varchar(100)" json:"publisher"`                   // 发行商
	ReleaseDate   *time.Time     `json:"release_date"`                                         // 发售日期
	Image         string         `gorm:"type:varchar(500)" json:"image"`                       // 封面图
	Screenshots   StringArray    `gorm:"type:json" json:"screenshots"`                         // 截图数组
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // 价格
	DiscountPrice *Money         `gorm:"type:decimal(20,2)" json:"discount_price,omitempty"`   // 折扣价（为空表示无折扣，存在时不得高于价格）
	StockCount    int            `gorm:"not null;default:0" json:"stock_count"`                // 库存数量
	InStock       bool           `gorm:"not null;default:true;index" json:"in_stock"`          // 是否有货（随库存维护）
	SalesCount    int            `gorm:"not null;default:0" json:"sales_count"`                // 累计销量
	Rating        float64        `gorm:"not null;default:0" json:"rating"`                     // 平均评分（由评价聚合）
	NumReviews    int            `gorm:"not null;default:0" json:"num_reviews"`                // 评价数量
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                  // 是否上架
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                    // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                           // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间

	// 关联
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Game) TableName() string {
	return "games"
}

// EffectivePrice 当前生效售价（折扣价优先）
func (g *Game) EffectivePrice() Money {
	if g == nil {
		return NewMoneyFromDecimal(decimal.Zero)
	}
	if g.DiscountPrice != nil && g.DiscountPrice.GreaterThan(decimal.Zero) && g.DiscountPrice.LessThanOrEqual(g.Price.Decimal) {
		return *g.DiscountPrice
	}
	return g.Price
}

// Purchasable 是否可购买指定数量
func (g *Game) Purchasable(quantity int) bool {
	if g == nil || !g.IsActive {
		return false
	}
	return g.InStock && g.StockCount >= quantity
}
