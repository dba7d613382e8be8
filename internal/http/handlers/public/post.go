package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gamebazaar/internal/http/response"
	"github.com/gamebazaar/internal/repository"
	"github.com/gamebazaar/internal/service"

	"github.com/gin-gonic/gin"
)

// GetPosts 文章列表，仅返回已发布内容
func (h *Handler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	posts, total, err := h.PostService.List(repository.PostListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          strings.TrimSpace(c.Query("type")),
		Search:        strings.TrimSpace(c.Query("search")),
		OnlyPublished: true,
		OrderBy:       "published_at DESC",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.post_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, posts, response.BuildPagination(page, pageSize, total))
}

// GetPost 文章详情
func (h *Handler) GetPost(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	post, err := h.PostService.GetBySlug(slug, true)
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
