package handler

import (
	"errors"
	"net/http"

	"blogicum-backend/internal/domains/comment"
	"blogicum-backend/internal/domains/post"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create adds a comment under a post; every outcome lands back on the
// parent post's detail page.
// POST /posts/:post_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}

	var req comment.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), viewerID, postID, req); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			response.ErrorResponse(c, http.StatusNotFound, post.ErrCodePostNotFound, "post not found")
		case errors.Is(err, comment.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, comment.ErrCodeInvalidInput, err.Error())
		default:
			response.InternalServerError(c, "failed to create comment")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailURL(postID))
}

// Update edits the viewer's own comment, resolved under the parent post
// from the URL.
// PUT /posts/:post_id/comments/:comment_id
func (h *CommentHandler) Update(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	var req comment.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if _, err := h.service.Update(c.Request.Context(), viewerID, postID, commentID, req); err != nil {
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			response.ErrorResponse(c, http.StatusNotFound, comment.ErrCodeCommentNotFound, "comment not found")
		case errors.Is(err, comment.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, comment.ErrCodeInvalidInput, err.Error())
		default:
			response.InternalServerError(c, "failed to update comment")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailURL(postID))
}

// Delete removes the viewer's own comment.
// DELETE /posts/:post_id/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parseID(c, "post_id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), viewerID, postID, commentID); err != nil {
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			response.ErrorResponse(c, http.StatusNotFound, comment.ErrCodeCommentNotFound, "comment not found")
		case errors.Is(err, comment.ErrForbidden):
			response.ErrorResponse(c, http.StatusForbidden, comment.ErrCodeForbidden, "only the author can delete this comment")
		default:
			response.InternalServerError(c, "failed to delete comment")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, postDetailURL(postID))
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
