package httpapi

import (
	"context"
	"net/http"

	"socialpulse/internal/adapters/httpapi/middleware"
	"socialpulse/internal/core/analytics"
	postPort "socialpulse/internal/ports/post"
	userPort "socialpulse/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const msgInternalError = "Internal server error"

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	TopUsers(ctx context.Context, limit int) ([]*userPort.TopUserDTO, error)
	UserPosts(ctx context.Context, userID string) ([]*postPort.PostDTO, error)
}

type PostUseCase interface {
	LatestPosts(ctx context.Context, limit int) ([]*postPort.PostDTO, error)
	PopularPosts(ctx context.Context) ([]*postPort.PostDTO, error)
}

type HealthUseCase interface {
	Health() analytics.Health
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	healthUC HealthUseCase,
	logger *zap.Logger,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ZapLogger(logger),
		middleware.Metrics(),
		middleware.CORS(allowedOrigins),
		gin.CustomRecovery(func(c *gin.Context, rec any) {
			logger.Error("❌ Panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
		}),
	)

	uc := NewUserController(userUC, logger)
	pc := NewPostController(postUC, logger)
	hc := NewHealthController(healthUC)

	r.GET("/users", uc.GetTopUsers)
	r.GET("/users/:userId/posts", uc.GetUserPosts)
	r.GET("/posts", pc.GetPosts)
	r.GET("/health", hc.GetHealth)

	// متریک‌های Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// respondInternalError جزئیات خطا فقط لاگ می‌شود و به کلاینت نمی‌رسد
func respondInternalError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Error("❌ Error in "+c.FullPath()+" endpoint", zap.Error(err), zap.String("requestID", c.GetString(middleware.RequestIDKey)))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
