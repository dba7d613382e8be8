package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusApproved   = "approved"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付方式常量
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPaypal     = "paypal"
	PaymentMethodCOD        = "cod"
)

// 支持的支付方式顺序
var SupportedPaymentMethods = []string{PaymentMethodCreditCard, PaymentMethodPaypal, PaymentMethodCOD}

// 游戏平台常量
const (
	PlatformPC     = "pc"
	PlatformPS5    = "ps5"
	PlatformXbox   = "xbox"
	PlatformSwitch = "switch"
)

// 通知事件常量
const (
	NotificationEventOrderConfirmed = "order_confirmed"
	NotificationEventStatusChanged  = "status_changed"
)

// 文章类型常量
const (
	PostTypeBlog   = "blog"
	PostTypeNotice = "notice"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 评分边界常量
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskOrderNotification  = "order:notification"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "gbz"
)

// 币种常量
const (
	SiteCurrencyDefault = "USD"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}

// 收据中无法解析的游戏占位标题
const UnavailableGameTitle = "Game no longer available"
