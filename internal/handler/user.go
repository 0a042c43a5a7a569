package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hafiizherdian/mini-e-commerce/internal/middleware"
	"github.com/Hafiizherdian/mini-e-commerce/internal/repository"
)

type UserHandler interface {
	GetAllUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	GetMe(c *gin.Context)
}

type userHandler struct {
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewUserHandler(profileRepo repository.ProfileRepository, logger *zap.Logger) UserHandler {
	return &userHandler{profileRepo: profileRepo, logger: logger}
}

// GetAllUsers handles GET /users
func (h *userHandler) GetAllUsers(c *gin.Context) {
	profiles, err := h.profileRepo.GetAllProfiles()
	if err != nil {
		h.logger.Error("Failed to get users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetUserByID handles GET /users/:id
func (h *userHandler) GetUserByID(c *gin.Context) {
	id := c.Param("id")

	profile, err := h.profileRepo.GetProfileByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("Failed to get user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMe handles GET /me. The lookup key is the token subject, so a
// valid token for a user missing from the directory yields 404.
func (h *userHandler) GetMe(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	profile, err := h.profileRepo.GetProfileByID(principal.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("Failed to get current user", zap.String("subject", principal.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
