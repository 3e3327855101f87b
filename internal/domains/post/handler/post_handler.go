package handler

import (
	"errors"
	"net/http"
	"strconv"

	"blogicum-backend/internal/domains/category"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Index serves the default published feed.
// GET /
func (h *PostHandler) Index(c *gin.Context) {
	result, err := h.service.Index(c.Request.Context(), pageRequest(c))
	if err != nil {
		response.InternalServerError(c, "failed to load feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Items, response.PageMeta(result))
}

// CategoryFeed serves the published feed of one category.
// GET /category/:slug
func (h *PostHandler) CategoryFeed(c *gin.Context) {
	cat, result, err := h.service.CategoryFeed(c.Request.Context(), c.Param("slug"), pageRequest(c))
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, category.ErrCodeCategoryNotFound, "category not found")
			return
		}
		response.InternalServerError(c, "failed to load category feed")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"category": cat,
		"posts":    result.Items,
	}, response.PageMeta(result))
}

// Profile serves a user's post listing; owners see their full set.
// GET /profile/:username
func (h *PostHandler) Profile(c *gin.Context) {
	viewerID, _ := middleware.ViewerID(c)

	owner, result, err := h.service.ProfileFeed(c.Request.Context(), c.Param("username"), viewerID, pageRequest(c))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, user.ErrCodeUserNotFound, "user not found")
			return
		}
		response.InternalServerError(c, "failed to load profile")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"profile": owner,
		"posts":   result.Items,
	}, response.PageMeta(result))
}

// Detail serves one post with its comments and an empty comment form.
// GET /posts/:post_id
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	viewerID, _ := middleware.ViewerID(c)

	page, err := h.service.Detail(c.Request.Context(), id, viewerID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, post.ErrCodePostNotFound, "post not found")
			return
		}
		response.InternalServerError(c, "failed to load post")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Create persists a new post authored by the viewer.
// POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), viewerID, req)
	if err != nil {
		if errors.Is(err, post.ErrInvalidInput) {
			response.ErrorResponse(c, http.StatusBadRequest, post.ErrCodeInvalidInput, err.Error())
			return
		}
		response.InternalServerError(c, "failed to create post")
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailURL(created.ID))
}

// Update rewrites the viewer's own post. A non-author is bounced back to
// the post detail page instead of getting a hard error.
// PUT /posts/:post_id
func (h *PostHandler) Update(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), viewerID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, post.ErrForbidden):
			c.Redirect(http.StatusSeeOther, postDetailURL(id))
		case errors.Is(err, post.ErrPostNotFound):
			response.ErrorResponse(c, http.StatusNotFound, post.ErrCodePostNotFound, "post not found")
		case errors.Is(err, post.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, post.ErrCodeInvalidInput, err.Error())
		default:
			response.InternalServerError(c, "failed to update post")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailURL(updated.ID))
}

// Delete removes the viewer's own post and lands on the index.
// DELETE /posts/:post_id
func (h *PostHandler) Delete(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), viewerID, id); err != nil {
		switch {
		case errors.Is(err, post.ErrForbidden):
			response.ErrorResponse(c, http.StatusForbidden, post.ErrCodeForbidden, "only the author can delete this post")
		case errors.Is(err, post.ErrPostNotFound):
			response.ErrorResponse(c, http.StatusNotFound, post.ErrCodePostNotFound, "post not found")
		default:
			response.InternalServerError(c, "failed to delete post")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func pageRequest(c *gin.Context) pagination.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return pagination.PageRequest{Page: page}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

func postDetailURL(id uuid.UUID) string {
	return "/posts/" + id.String()
}
