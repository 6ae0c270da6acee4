package middleware

import (
	"net/http"
	"time"

	"dailyreview/config"
	"dailyreview/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupMiddleware 配置中间件
func SetupMiddleware(r *gin.Engine, allowOrigins []string) {
	// CORS中间件
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Internal-Auth"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	r.Use(cors.New(corsConfig))

	// 日志中间件
	r.Use(RequestLogger())

	// 错误恢复中间件，panic 同样只返回通用错误
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		config.Logger.Errorw("请求处理 panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.GenericErrorMessage})
	}))
}
