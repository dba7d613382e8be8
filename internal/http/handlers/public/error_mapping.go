package public

import (
	"errors"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/i18n"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

// respondParamError 处理携带文案 key 与参数的业务错误（密码策略、库存不足等）。
func respondParamError(c *gin.Context, code int, err error, fallbackKey string) {
	locale := i18n.ResolveLocale(c)
	if perr, ok := err.(interface {
		Key() string
		Args() []interface{}
	}); ok {
		msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
		respondErrorWithMsg(c, code, msg, nil)
		return
	}
	respondError(c, code, fallbackKey, nil)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrGameNotFound, code: response.CodeNotFound, key: "error.game_not_found"},
	{target: service.ErrGameNotAvailable, code: response.CodeBadRequest, key: "error.game_out_of_stock"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_quantity_invalid"},
}

func respondCartMutationError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInsufficientStock) {
		respondParamError(c, response.CodeBadRequest, err, "error.game_out_of_stock")
		return
	}
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "error.cart_update_failed")
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	{target: service.ErrShippingAddressRequired, code: response.CodeBadRequest, key: "error.shipping_address_required"},
	{target: service.ErrGameNotAvailable, code: response.CodeBadRequest, key: "error.game_out_of_stock"},
}

func respondOrderCreateError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInsufficientStock) {
		respondParamError(c, response.CodeBadRequest, err, "error.game_out_of_stock")
		return
	}
	respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
}

var orderMutationErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrOrderAlreadyPaid, code: response.CodeBadRequest, key: "error.order_already_paid"},
	{target: service.ErrOrderTransitionInvalid, code: response.CodeBadRequest, key: "error.order_transition_invalid"},
	{target: service.ErrOrderCancelNotAllowed, code: response.CodeBadRequest, key: "error.order_cancel_not_allowed"},
}

func respondOrderMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderMutationErrorRules, response.CodeInternal, "error.order_update_failed")
}

var reviewCreateErrorRules = []mappedHandlerError{
	{target: service.ErrGameNotFound, code: response.CodeNotFound, key: "error.game_not_found"},
	{target: service.ErrReviewRatingInvalid, code: response.CodeBadRequest, key: "error.review_rating_invalid"},
	{target: service.ErrReviewExists, code: response.CodeBadRequest, key: "error.review_exists"},
}

func respondReviewCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reviewCreateErrorRules, response.CodeInternal, "error.review_save_failed")
}
