package service

import (
	"strings"
	"sync"
	"time"

	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload 验证码校验参数
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 验证码服务，按场景开关校验
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Provider 当前验证码提供方
func (s *CaptchaService) Provider() string {
	provider := strings.ToLower(strings.TrimSpace(s.cfg.Provider))
	if provider == "" {
		return constants.CaptchaProviderNone
	}
	return provider
}

// SceneEnabled 场景是否启用验证码
func (s *CaptchaService) SceneEnabled(scene string) bool {
	if s.Provider() == constants.CaptchaProviderNone {
		return false
	}
	switch scene {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	case constants.CaptchaSceneRegister:
		return s.cfg.Scenes.Register
	default:
		return false
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s.Provider() != constants.CaptchaProviderImage {
		return nil, ErrCaptchaConfigInvalid
	}

	driver := s.buildImageDriver()
	captcha := base64Captcha.NewCaptcha(driver, s.store())
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   id,
		ImageBase64: b64,
	}, nil
}

// Verify 校验验证码，场景未启用时直接放行
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.SceneEnabled(scene) {
		return nil
	}
	if s.Provider() != constants.CaptchaProviderImage {
		return ErrCaptchaConfigInvalid
	}

	id := strings.TrimSpace(payload.CaptchaID)
	code := strings.TrimSpace(payload.CaptchaCode)
	if id == "" || code == "" {
		return ErrCaptchaRequired
	}
	if !s.store().Verify(id, code, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) buildImageDriver() base64Captcha.Driver {
	img := s.cfg.Image
	length := img.Length
	if length <= 0 {
		length = 5
	}
	width := img.Width
	if width <= 0 {
		width = 240
	}
	height := img.Height
	if height <= 0 {
		height = 80
	}
	return base64Captcha.NewDriverString(
		height,
		width,
		img.NoiseCount,
		img.ShowLine,
		length,
		"234567890ABCDEFGHJKMNPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
}

func (s *CaptchaService) store() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore == nil {
		maxStore := s.cfg.Image.MaxStore
		if maxStore <= 0 {
			maxStore = 10240
		}
		expire := s.cfg.Image.ExpireSeconds
		if expire <= 0 {
			expire = 300
		}
		s.imageStore = base64Captcha.NewMemoryStore(maxStore, time.Duration(expire)*time.Second)
	}
	return s.imageStore
}
