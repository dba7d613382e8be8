package repository

import "time"

// GameListFilter 查询游戏列表的过滤条件
type GameListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	Genre        string
	Platform     string
	Search       string
	OnlyActive   bool
	OnlyInStock  bool
	WithCategory bool
	OrderBy      string
}

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page          int
	PageSize      int
	Type          string
	Search        string
	OnlyPublished bool
	OrderBy       string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	IsPaid      *bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page      int
	PageSize  int
	GameID    uint
	UserID    uint
	MinRating int
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page          int
	PageSize      int
	Keyword       string
	Status        string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	LastLoginFrom *time.Time
	LastLoginTo   *time.Time
}
