package admin

import (
	"errors"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/models"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// PostSaveRequest 文章创建/更新请求
type PostSaveRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Type        string `json:"type"`
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	Thumbnail   string `json:"thumbnail"`
	IsPublished bool   `json:"is_published"`
}

func (r PostSaveRequest) toModel() *models.Post {
	return &models.Post{
		Slug:        r.Slug,
		Type:        r.Type,
		Title:       r.Title,
		Summary:     r.Summary,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
		IsPublished: r.IsPublished,
	}
}

// GetAdminPosts 文章列表（含未发布）
func (h *Handler) GetAdminPosts(c *gin.Context) {
	var query struct {
		Page     int    `form:"page"`
		PageSize int    `form:"page_size"`
		Type     string `form:"type"`
		Search   string `form:"search"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, pageSize := normalizePagination(query.Page, query.PageSize)
	filter := repository.PostListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     query.Type,
		Search:   query.Search,
		OrderBy:  "created_at DESC",
	}

	posts, total, err := h.PostService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, posts, response.BuildPagination(page, pageSize, total))
}

// GetAdminPost 文章详情
func (h *Handler) GetAdminPost(c *gin.Context) {
	post, err := h.PostService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}
	response.Success(c, post)
}

// CreateAdminPost 创建文章
func (h *Handler) CreateAdminPost(c *gin.Context) {
	var req PostSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post := req.toModel()
	if err := h.PostService.Create(post); err != nil {
		if errors.Is(err, service.ErrPostSlugExists) {
			respondError(c, response.CodeBadRequest, "error.post_slug_exists", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.save_failed", err)
		return
	}

	response.Success(c, post)
}

// UpdateAdminPost 更新文章
func (h *Handler) UpdateAdminPost(c *gin.Context) {
	var req PostSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	post := req.toModel()
	if err := h.PostService.Update(c.Param("id"), post); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
		case errors.Is(err, service.ErrPostSlugExists):
			respondError(c, response.CodeBadRequest, "error.post_slug_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.save_failed", err)
		}
		return
	}

	response.Success(c, post)
}

// DeleteAdminPost 删除文章
func (h *Handler) DeleteAdminPost(c *gin.Context) {
	if err := h.PostService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, response.CodeNotFound, "error.post_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.delete_failed", err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
