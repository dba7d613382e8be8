package i18n

import "github.com/gamebazaar/internal/constants"

// messages 各语言文案表
var messages = map[string]map[string]string{
	constants.LocaleEnUS: {
		"error.bad_request":              "Invalid request",
		"error.unauthorized":             "Authentication required",
		"error.forbidden":                "Permission denied",
		"error.not_found":                "Resource not found",
		"error.internal":                 "Internal server error",
		"error.too_many_requests":        "Too many requests, please try again later",
		"error.login_blocked":            "Too many failed attempts, login temporarily blocked",
		"error.rate_limited":             "Too many requests, try again in %d seconds",
		"error.login_too_many":           "Too many login attempts, try again in %d seconds",
		"error.rate_limit_unavailable":   "Rate limiter unavailable, please try again later",
		"error.jwt_secret_missing":       "Authentication is not configured",
		"error.auth_header_missing":      "Authorization header is missing",
		"error.auth_header_invalid":      "Authorization header is malformed",
		"error.token_invalid":            "Invalid or expired token",
		"error.token_revoked":            "Session has expired, please sign in again",
		"error.invalid_credentials":      "Invalid email or password",
		"error.invalid_password":         "Incorrect password",
		"error.invalid_email":            "Invalid email address",
		"error.user_disabled":            "Account is disabled",
		"error.email_exists":             "Email is already registered",
		"error.profile_empty":            "Nothing to update",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",
		"error.captcha_required":         "Captcha is required",
		"error.captcha_invalid":          "Captcha verification failed",
		"error.captcha_config_invalid":   "Captcha is not configured",
		"error.game_not_found":           "Game not found",
		"error.game_fetch_failed":        "Failed to load games",
		"error.game_save_failed":         "Failed to save game",
		"error.game_slug_exists":         "Slug is already in use",
		"error.game_out_of_stock":        "Game is out of stock",
		"error.game_insufficient_stock":  "Insufficient stock for %s",
		"error.cart_empty":               "Cart is empty",
		"error.cart_item_not_found":      "Cart item not found",
		"error.cart_quantity_invalid":    "Quantity must be at least 1",
		"error.cart_fetch_failed":        "Failed to load cart",
		"error.cart_update_failed":       "Failed to update cart",
		"error.order_not_found":          "Order not found",
		"error.order_fetch_failed":       "Failed to load orders",
		"error.order_create_failed":      "Failed to create order",
		"error.order_update_failed":      "Failed to update order",
		"error.order_status_invalid":     "Unknown order status",
		"error.order_transition_invalid": "Order status transition not allowed",
		"error.order_cancel_not_allowed": "Order can no longer be cancelled",
		"error.order_already_paid":       "Order is already paid",
		"error.payment_method_invalid":   "Unsupported payment method",
		"error.shipping_address_required": "Shipping address is required",
		"error.wishlist_fetch_failed":    "Failed to load wishlist",
		"error.wishlist_update_failed":   "Failed to update wishlist",
		"error.review_exists":            "You have already reviewed this game",
		"error.review_rating_invalid":    "Rating must be between 1 and 5",
		"error.review_save_failed":       "Failed to save review",
		"error.review_fetch_failed":      "Failed to load reviews",
		"error.post_not_found":           "Post not found",
		"error.post_fetch_failed":        "Failed to load posts",
		"error.post_save_failed":         "Failed to save post",
		"error.post_slug_exists":         "Slug is already in use",
		"error.category_not_found":       "Category not found",
		"error.category_fetch_failed":    "Failed to load categories",
		"error.category_slug_exists":     "Slug is already in use",
		"error.category_not_empty":       "Category still contains games",
		"error.review_not_found":         "Review not found",
		"error.user_not_found":           "User not found",
		"error.user_fetch_failed":        "Failed to load users",
		"error.user_update_failed":       "Failed to update user",
		"error.user_status_invalid":      "Unknown user status",
		"error.password_weak":            "Password does not meet the security policy",
		"error.save_failed":              "Failed to save",
		"error.delete_failed":            "Failed to delete",
		"error.config_fetch_failed":      "Failed to load configuration",
		"error.email_service_disabled":   "Email service is disabled",
		"error.email_service_not_configured": "Email service is not configured",
		"error.email_recipient_rejected": "Recipient address was rejected",
		"error.email_send_failed":        "Failed to send email",
		"error.admin_username_invalid":   "Invalid username",
		"error.admin_username_exists":    "Username is already taken",
		"error.admin_create_failed":      "Failed to create administrator",
		"error.admin_update_failed":      "Failed to update administrator",
		"error.admin_delete_failed":      "Failed to delete administrator",
		"error.admin_id_invalid":         "Invalid administrator ID",
		"error.admin_id_type_invalid":    "Invalid administrator session",
		"error.user_id_invalid":          "Invalid user session",
		"error.user_id_type_invalid":     "Invalid user session",
		"error.admin_delete_self_forbidden": "You cannot delete your own account",
		"error.admin_delete_protected":   "This administrator cannot be deleted",
		"error.admin_delete_last_forbidden": "At least one administrator must remain",
		"order.status.pending":           "Pending",
		"order.status.processing":        "Processing",
		"order.status.approved":          "Approved",
		"order.status.shipped":           "Shipped",
		"order.status.delivered":         "Delivered",
		"order.status.cancelled":         "Cancelled",
		"email.order_confirmed.subject":  "%s - Order %s confirmed",
		"email.order_confirmed.body":     "Thank you for your order!\n\nOrder No: %s\nTotal: %s\n\nYour receipt is attached. We will notify you when the order status changes.",
		"email.order_status.subject":     "%s - Order %s",
		"email.order_status.body":        "Order No: %s\nStatus: %s\nTotal: %s\n\nYou can check the order details in your account.",
	},
	constants.LocaleZhCN: {
		"error.bad_request":              "请求参数错误",
		"error.unauthorized":             "请先登录",
		"error.forbidden":                "没有操作权限",
		"error.not_found":                "资源不存在",
		"error.internal":                 "服务器内部错误",
		"error.too_many_requests":        "请求过于频繁，请稍后再试",
		"error.login_blocked":            "失败次数过多，登录已被暂时锁定",
		"error.rate_limited":             "请求过于频繁，请 %d 秒后重试",
		"error.login_too_many":           "登录尝试过多，请 %d 秒后重试",
		"error.rate_limit_unavailable":   "限流服务不可用，请稍后再试",
		"error.jwt_secret_missing":       "认证服务未配置",
		"error.auth_header_missing":      "缺少 Authorization 头",
		"error.auth_header_invalid":      "Authorization 头格式不正确",
		"error.token_invalid":            "token 无效或已过期",
		"error.token_revoked":            "登录状态已失效，请重新登录",
		"error.invalid_credentials":      "邮箱或密码错误",
		"error.invalid_password":         "密码不正确",
		"error.invalid_email":            "邮箱格式不正确",
		"error.user_disabled":            "账号已被禁用",
		"error.email_exists":             "该邮箱已注册",
		"error.profile_empty":            "没有需要更新的内容",
		"error.password_min_length":      "密码长度不能少于 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.captcha_required":         "请输入验证码",
		"error.captcha_invalid":          "验证码校验失败",
		"error.captcha_config_invalid":   "验证码未配置",
		"error.game_not_found":           "游戏不存在",
		"error.game_fetch_failed":        "游戏加载失败",
		"error.game_save_failed":         "游戏保存失败",
		"error.game_slug_exists":         "该 slug 已被占用",
		"error.game_out_of_stock":        "游戏已售罄",
		"error.game_insufficient_stock":  "「%s」库存不足",
		"error.cart_empty":               "购物车为空",
		"error.cart_item_not_found":      "购物车项不存在",
		"error.cart_quantity_invalid":    "数量不能小于 1",
		"error.cart_fetch_failed":        "购物车加载失败",
		"error.cart_update_failed":       "购物车更新失败",
		"error.order_not_found":          "订单不存在",
		"error.order_fetch_failed":       "订单加载失败",
		"error.order_create_failed":      "订单创建失败",
		"error.order_update_failed":      "订单更新失败",
		"error.order_status_invalid":     "未知的订单状态",
		"error.order_transition_invalid": "不允许的订单状态流转",
		"error.order_cancel_not_allowed": "订单已无法取消",
		"error.order_already_paid":       "订单已支付",
		"error.payment_method_invalid":   "不支持的支付方式",
		"error.shipping_address_required": "收货地址不能为空",
		"error.wishlist_fetch_failed":    "心愿单加载失败",
		"error.wishlist_update_failed":   "心愿单更新失败",
		"error.review_exists":            "你已评价过该游戏",
		"error.review_rating_invalid":    "评分需在 1 到 5 之间",
		"error.review_save_failed":       "评价保存失败",
		"error.review_fetch_failed":      "评价加载失败",
		"error.post_not_found":           "文章不存在",
		"error.post_fetch_failed":        "文章加载失败",
		"error.post_save_failed":         "文章保存失败",
		"error.post_slug_exists":         "该 slug 已被占用",
		"error.category_not_found":       "分类不存在",
		"error.category_fetch_failed":    "分类加载失败",
		"error.category_slug_exists":     "该 slug 已被占用",
		"error.category_not_empty":       "分类下仍有游戏",
		"error.review_not_found":         "评价不存在",
		"error.user_not_found":           "用户不存在",
		"error.user_fetch_failed":        "用户加载失败",
		"error.user_update_failed":       "用户更新失败",
		"error.user_status_invalid":      "未知的用户状态",
		"error.password_weak":            "密码不符合安全策略",
		"error.save_failed":              "保存失败",
		"error.delete_failed":            "删除失败",
		"error.config_fetch_failed":      "配置加载失败",
		"error.email_service_disabled":   "邮件服务未启用",
		"error.email_service_not_configured": "邮件服务未配置",
		"error.email_recipient_rejected": "收件地址被拒绝",
		"error.email_send_failed":        "邮件发送失败",
		"error.admin_username_invalid":   "用户名不合法",
		"error.admin_username_exists":    "用户名已被占用",
		"error.admin_create_failed":      "管理员创建失败",
		"error.admin_update_failed":      "管理员更新失败",
		"error.admin_delete_failed":      "管理员删除失败",
		"error.admin_id_invalid":         "管理员 ID 不合法",
		"error.admin_id_type_invalid":    "管理员登录态无效",
		"error.user_id_invalid":          "用户登录态无效",
		"error.user_id_type_invalid":     "用户登录态无效",
		"error.admin_delete_self_forbidden": "不能删除自己的账号",
		"error.admin_delete_protected":   "该管理员不可删除",
		"error.admin_delete_last_forbidden": "至少需保留一名管理员",
		"order.status.pending":           "待处理",
		"order.status.processing":        "处理中",
		"order.status.approved":          "已审核",
		"order.status.shipped":           "已发货",
		"order.status.delivered":         "已送达",
		"order.status.cancelled":         "已取消",
		"email.order_confirmed.subject":  "%s - 订单 %s 已确认",
		"email.order_confirmed.body":     "感谢您的订购！\n\n订单号：%s\n合计：%s\n\n收据见附件，订单状态变化时我们会再次通知您。",
		"email.order_status.subject":     "%s - 订单%s",
		"email.order_status.body":        "订单号：%s\n状态：%s\n合计：%s\n\n您可以在账户中查看订单详情。",
	},
}
