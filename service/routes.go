package service

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *Handler) *gin.Engine {
	routes := gin.New()
	routes.Use(RequestId, AccessLog(h.Logger), gin.Recovery())

	routes.GET("/activity/:username", h.Activity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(h.CacheUserRequest)

		cachedRoutes.PUT("/book", h.CreateBook)
		cachedRoutes.POST("/book/:id", h.UpdateBookStatusById)
		cachedRoutes.GET("/book/:id", h.GetBookById)
		cachedRoutes.DELETE("/book/:id", h.DeleteBookById)
		cachedRoutes.GET("/store", h.Store)
	}

	return routes
}
