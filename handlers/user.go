package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/models"
)

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	profile, err := h.Users.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, logger, "Failed to retrieve profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler applies the fields present in the body.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	profile, err := h.Users.UpdateProfile(c.Request.Context(), currentUserID(c), update)
	if err != nil {
		respondError(c, logger, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
