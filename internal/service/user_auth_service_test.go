package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gamebazaar/internal/config"
	"github.com/gamebazaar/internal/constants"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 24},
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db)), db
}

func seedAuthUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func TestBatchUpdateUserStatus(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	first := seedAuthUser(t, db, "first@example.com")
	second := seedAuthUser(t, db, "second@example.com")

	// 不存在的 ID 不计入更新行数
	affected, err := svc.BatchUpdateUserStatus([]uint{first.ID, second.ID, 9999}, " Disabled ")
	if err != nil {
		t.Fatalf("batch disable failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected rows want 2 got %d", affected)
	}

	var got models.User
	if err := db.First(&got, first.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if got.Status != constants.UserStatusDisabled {
		t.Fatalf("status want disabled got %s", got.Status)
	}
	if got.TokenVersion != 1 || got.TokenInvalidBefore == nil {
		t.Fatalf("disable should invalidate tokens: version=%d invalid_before=%v", got.TokenVersion, got.TokenInvalidBefore)
	}

	// 重新启用不回退 token 版本
	affected, err = svc.BatchUpdateUserStatus([]uint{first.ID}, constants.UserStatusActive)
	if err != nil {
		t.Fatalf("batch enable failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected rows want 1 got %d", affected)
	}
	if err := db.First(&got, first.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if got.Status != constants.UserStatusActive || got.TokenVersion != 1 {
		t.Fatalf("enable state unexpected: status=%s version=%d", got.Status, got.TokenVersion)
	}

	if _, err := svc.BatchUpdateUserStatus([]uint{first.ID}, "banned"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown status want ErrNotFound got %v", err)
	}

	affected, err = svc.BatchUpdateUserStatus(nil, constants.UserStatusActive)
	if err != nil {
		t.Fatalf("empty batch failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("empty batch want 0 affected got %d", affected)
	}
}
