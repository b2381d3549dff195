package api

import (
	"github.com/cloudwego/hertz/pkg/app/server"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(h *server.Hertz, handler *ResourceHandler) {
	// 健康检查
	h.GET("/health", handler.HealthCheck)

	v1 := h.Group("/api/v1")
	{
		resources := v1.Group("/resources")
		{
			resources.GET("", handler.HealthCheck)
			resources.POST("/:name/force", handler.ForceResource)
		}

		v1.GET("/upstream/*path", handler.Upstream)
		v1.GET("/charset", handler.Charset)
	}
}
