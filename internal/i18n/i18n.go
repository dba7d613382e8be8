package i18n

import (
	"fmt"
	"strings"

	"github.com/gamebazaar/internal/constants"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认站点语言
const DefaultLocale = constants.LocaleEnUS

// ResolveLocale 解析请求语言
// 优先级：lang 查询参数 > X-Locale 头 > Accept-Language 头 > 默认语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := Normalize(c.Query("lang")); lang != "" {
		return lang
	}
	if lang := Normalize(c.GetHeader("X-Locale")); lang != "" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if lang := Normalize(tag); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

// Normalize 将语言标签规范化为受支持的站点语言，无法识别返回空串
func Normalize(tag string) string {
	trimmed := strings.ToLower(strings.TrimSpace(tag))
	if trimmed == "" {
		return ""
	}
	for _, locale := range constants.SupportedLocales {
		if strings.EqualFold(trimmed, locale) {
			return locale
		}
	}
	base := strings.SplitN(trimmed, "-", 2)[0]
	switch base {
	case "en":
		return constants.LocaleEnUS
	case "zh":
		return constants.LocaleZhCN
	default:
		return ""
	}
}

// T 按语言返回文案，键缺失时回退默认语言，再缺失返回键本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 带参数格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
