package admin

import (
	"errors"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// CategorySaveRequest 分类创建/更新请求
type CategorySaveRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

func (r CategorySaveRequest) toModel() *models.Category {
	return &models.Category{
		Slug:      r.Slug,
		Name:      r.Name,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

// GetAdminCategories 分类列表
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// CreateAdminCategory 创建分类
func (h *Handler) CreateAdminCategory(c *gin.Context) {
	var req CategorySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category := req.toModel()
	if err := h.CategoryService.Create(category); err != nil {
		if errors.Is(err, service.ErrCategorySlugExists) {
			respondError(c, response.CodeBadRequest, "error.category_slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	response.Success(c, category)
}

// UpdateAdminCategory 更新分类
func (h *Handler) UpdateAdminCategory(c *gin.Context) {
	var req CategorySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	category := req.toModel()
	if err := h.CategoryService.Update(c.Param("id"), category); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		case errors.Is(err, service.ErrCategorySlugExists):
			respondError(c, response.CodeBadRequest, "error.category_slug_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}

	response.Success(c, category)
}

// DeleteAdminCategory 删除分类，分类下存在游戏时拒绝
func (h *Handler) DeleteAdminCategory(c *gin.Context) {
	if err := h.CategoryService.Delete(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "error.category_not_found", nil)
		case errors.Is(err, service.ErrCategoryNotEmpty):
			respondError(c, response.CodeBadRequest, "error.category_not_empty", nil)
		default:
			respondError(c, response.CodeInternal, "error.delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
