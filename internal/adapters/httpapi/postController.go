package httpapi

import (
	"errors"
	"net/http"

	"socialpulse/internal/core/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	postTypeLatest     = "latest"
	postTypePopular    = "popular"
	latestPostsLimit   = 5
	msgInvalidPostType = `Invalid type parameter. Use "latest" or "popular".`
)

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

func (ctl *PostController) GetPosts(c *gin.Context) {
	var req struct {
		Type string `form:"type" binding:"required,oneof=latest popular"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPostType})
		return
	}

	switch req.Type {
	case postTypeLatest:
		posts, err := ctl.pc.LatestPosts(c.Request.Context(), latestPostsLimit)
		if err != nil {
			respondInternalError(c, ctl.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})

	case postTypePopular:
		posts, err := ctl.pc.PopularPosts(c.Request.Context())
		if errors.Is(err, analytics.ErrCommentsNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Comments data not available yet"})
			return
		}
		if err != nil {
			respondInternalError(c, ctl.logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}
