package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (*ReviewService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Game{}, &models.User{}, &models.Review{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	models.DB = db
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewGameRepository(db))
	return svc, db
}

func TestCreateReviewUpdatesRatingStats(t *testing.T) {
	svc, db := setupReviewServiceTest(t)

	game := seedGame(t, db, "review-rating", 30, 5)

	if _, err := svc.Create(301, game.ID, 5, " Great ", " Loved it "); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	review, err := svc.Create(302, game.ID, 4, "Good", "")
	if err != nil {
		t.Fatalf("second review failed: %v", err)
	}
	if review.Title != "Good" {
		t.Fatalf("review title want Good got %q", review.Title)
	}

	var got models.Game
	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.Rating != 4.5 || got.NumReviews != 2 {
		t.Fatalf("rating stats want (4.5, 2) got (%v, %d)", got.Rating, got.NumReviews)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc, db := setupReviewServiceTest(t)

	game := seedGame(t, db, "review-validation", 30, 5)

	if _, err := svc.Create(303, game.ID, 0, "", ""); !errors.Is(err, ErrReviewRatingInvalid) {
		t.Fatalf("rating 0 want ErrReviewRatingInvalid got %v", err)
	}
	if _, err := svc.Create(303, game.ID, 6, "", ""); !errors.Is(err, ErrReviewRatingInvalid) {
		t.Fatalf("rating 6 want ErrReviewRatingInvalid got %v", err)
	}
	if _, err := svc.Create(303, game.ID+1000, 4, "", ""); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("missing game want ErrGameNotFound got %v", err)
	}

	if _, err := svc.Create(303, game.ID, 4, "", ""); err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if _, err := svc.Create(303, game.ID, 3, "", ""); !errors.Is(err, ErrReviewExists) {
		t.Fatalf("duplicate review want ErrReviewExists got %v", err)
	}
}

func TestDeleteReviewRecalculatesStats(t *testing.T) {
	svc, db := setupReviewServiceTest(t)

	game := seedGame(t, db, "review-delete", 30, 5)

	first, err := svc.Create(304, game.ID, 5, "", "")
	if err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if _, err := svc.Create(305, game.ID, 1, "", ""); err != nil {
		t.Fatalf("second review failed: %v", err)
	}

	if err := svc.Delete(strconv.FormatUint(uint64(first.ID), 10)); err != nil {
		t.Fatalf("delete review failed: %v", err)
	}

	var got models.Game
	if err := db.First(&got, game.ID).Error; err != nil {
		t.Fatalf("reload game failed: %v", err)
	}
	if got.Rating != 1 || got.NumReviews != 1 {
		t.Fatalf("rating stats after delete want (1, 1) got (%v, %d)", got.Rating, got.NumReviews)
	}

	if err := svc.Delete("999999"); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("delete missing review want ErrReviewNotFound got %v", err)
	}
}
