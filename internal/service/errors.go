package service

import "errors"

// 服务层业务错误，由各 handler 映射为响应码与 i18n 文案
var (
	ErrNotFound           = errors.New("资源不存在")
	ErrInvalidCredentials = errors.New("凭证无效")
	ErrInvalidPassword    = errors.New("密码不正确")
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrUserDisabled       = errors.New("账号已被禁用")
	ErrEmailExists        = errors.New("邮箱已注册")
	ErrProfileEmpty       = errors.New("没有需要更新的内容")
	ErrWeakPassword       = errors.New("密码不符合安全策略")

	ErrCaptchaRequired      = errors.New("缺少验证码")
	ErrCaptchaInvalid       = errors.New("验证码校验失败")
	ErrCaptchaConfigInvalid = errors.New("验证码配置无效")

	ErrGameNotFound     = errors.New("游戏不存在")
	ErrGameNotAvailable = errors.New("游戏不可购买")
	ErrGameSlugExists   = errors.New("游戏 slug 已存在")

	ErrCategoryNotFound   = errors.New("分类不存在")
	ErrCategoryNotEmpty   = errors.New("分类下仍有游戏")
	ErrCategorySlugExists = errors.New("分类 slug 已存在")

	ErrInvalidCartItem  = errors.New("购物车项参数无效")
	ErrCartItemNotFound = errors.New("购物车项不存在")
	ErrCartEmpty        = errors.New("购物车为空")

	// ErrInsufficientStock 库存不足
	// 具体商品信息通过 insufficientStockError 携带
	ErrInsufficientStock = errors.New("库存不足")

	ErrOrderNotFound           = errors.New("订单不存在")
	ErrOrderFetchFailed        = errors.New("订单查询失败")
	ErrOrderCreateFailed       = errors.New("订单创建失败")
	ErrOrderUpdateFailed       = errors.New("订单更新失败")
	ErrOrderStatusInvalid      = errors.New("未知的订单状态")
	ErrOrderTransitionInvalid  = errors.New("不允许的订单状态流转")
	ErrOrderCancelNotAllowed   = errors.New("订单已无法取消")
	ErrOrderAlreadyPaid        = errors.New("订单已支付")
	ErrPaymentMethodInvalid    = errors.New("不支持的支付方式")
	ErrShippingAddressRequired = errors.New("收货地址不能为空")

	ErrReviewExists        = errors.New("已评价过该游戏")
	ErrReviewRatingInvalid = errors.New("评分超出范围")
	ErrReviewNotFound      = errors.New("评价不存在")

	ErrPostNotFound   = errors.New("文章不存在")
	ErrPostSlugExists = errors.New("文章 slug 已存在")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrEmailRecipientRejected    = errors.New("收件地址被拒绝")

	ErrQueueUnavailable = errors.New("队列不可用")
)

// insufficientStockError 库存不足错误，携带游戏标题供 i18n 格式化
type insufficientStockError struct {
	title string
}

func (e insufficientStockError) Error() string {
	return "库存不足: " + e.title
}

func (e insufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func (e insufficientStockError) Key() string {
	return "error.game_insufficient_stock"
}

func (e insufficientStockError) Args() []interface{} {
	return []interface{}{e.title}
}

// NewInsufficientStockError 创建携带游戏标题的库存不足错误
func NewInsufficientStockError(title string) error {
	return insufficientStockError{title: title}
}
