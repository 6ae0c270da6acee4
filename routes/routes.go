package routes

import (
	"dailyreview/controllers"
	"dailyreview/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, formdataController *controllers.FormdataController, internalToken string) {
	// 公开路由
	public := r.Group("/api")
	{
		public.POST("/formdata", formdataController.Create)
	}

	// 内部路由组，只读
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(internalToken))
	{
		internal.GET("/formdata", formdataController.List)
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

// NewRouter 创建带中间件和全部路由的 Gin 引擎
func NewRouter(allowOrigins []string, formdataController *controllers.FormdataController, internalToken string) *gin.Engine {
	r := gin.New()
	middleware.SetupMiddleware(r, allowOrigins)
	RegisterRoutes(r, formdataController, internalToken)
	return r
}
