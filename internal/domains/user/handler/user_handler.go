package handler

import (
	"errors"
	"net/http"

	"blogicum-backend/internal/domains/user"
	"blogicum-backend/internal/shared/middleware"
	"blogicum-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// UpdateProfile edits the viewer's own profile and lands on it.
// PUT /profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	viewerID, ok := middleware.ViewerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), viewerID, req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			response.ErrorResponse(c, http.StatusBadRequest, user.ErrCodeInvalidInput, err.Error())
		case errors.Is(err, user.ErrDuplicateUsername):
			response.ErrorResponse(c, http.StatusConflict, user.ErrCodeDuplicateUsername, "username already taken")
		case errors.Is(err, user.ErrUserNotFound):
			response.ErrorResponse(c, http.StatusNotFound, user.ErrCodeUserNotFound, "user not found")
		default:
			response.InternalServerError(c, "failed to update profile")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/profile/"+updated.Username)
}
