package admin

import (
	"errors"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailTestRequest 测试邮件请求
type EmailTestRequest struct {
	ToEmail string `json:"to_email" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendAdminTestEmail 校验 SMTP 配置并发送测试邮件
func (h *Handler) SendAdminTestEmail(c *gin.Context) {
	var req EmailTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.EmailService.SendTestEmail(req.ToEmail, req.Subject, req.Body); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailServiceDisabled):
			respondError(c, response.CodeBadRequest, "error.email_service_disabled", nil)
		case errors.Is(err, service.ErrEmailServiceNotConfigured):
			respondError(c, response.CodeBadRequest, "error.email_service_not_configured", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrEmailRecipientRejected):
			respondError(c, response.CodeBadRequest, "error.email_recipient_rejected", nil)
		default:
			respondError(c, response.CodeInternal, "error.email_send_failed", err)
		}
		return
	}

	requestLog(c).Infow("admin_test_email_sent", "to", req.ToEmail)
	response.Success(c, gin.H{"sent": true})
}
