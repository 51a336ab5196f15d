package httpapi

import (
	"errors"
	"net/http"

	"socialpulse/internal/core/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const topUsersLimit = 5

type UserController struct {
	uc     UserUseCase
	logger *zap.Logger
}

func NewUserController(uc UserUseCase, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, logger: logger}
}

func (ctl *UserController) GetTopUsers(c *gin.Context) {
	users, err := ctl.uc.TopUsers(c.Request.Context(), topUsersLimit)
	if errors.Is(err, analytics.ErrUsersNotReady) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Users data not available yet"})
		return
	}
	if err != nil {
		respondInternalError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topUsers": users})
}

func (ctl *UserController) GetUserPosts(c *gin.Context) {
	posts, err := ctl.uc.UserPosts(c.Request.Context(), c.Param("userId"))
	if errors.Is(err, analytics.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		respondInternalError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
