package service

import (
	"unicode"

	"github.com/gamebazaar/internal/config"
)

// passwordPolicyError 携带文案 key 与参数的密码策略错误
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e *passwordPolicyError) Error() string {
	return e.key
}

func (e *passwordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

// Key 文案 key
func (e *passwordPolicyError) Key() string {
	return e.key
}

// Args 文案参数
func (e *passwordPolicyError) Args() []interface{} {
	return e.args
}

// validatePassword 按配置校验密码强度，策略全空时不校验
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength <= 0 && !policy.RequireUpper && !policy.RequireLower && !policy.RequireNumber && !policy.RequireSpecial {
		return nil
	}

	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return &passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return &passwordPolicyError{key: "error.password_require_upper"}
	}
	if policy.RequireLower && !hasLower {
		return &passwordPolicyError{key: "error.password_require_lower"}
	}
	if policy.RequireNumber && !hasNumber {
		return &passwordPolicyError{key: "error.password_require_number"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return &passwordPolicyError{key: "error.password_require_special"}
	}
	return nil
}
