package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes 注册全部路由
func RegisterRoutes(router *gin.Engine, system *SystemHandler, content *ContentHandler, links *LinkHandler) {
	router.GET("/", system.Root)
	router.GET("/health", system.HealthCheck)
	router.GET("/test", system.Diagnostics)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/r/:slug", links.Redirect)

	api := router.Group("/api")
	{
		api.POST("/products", content.CreateProduct)
		api.GET("/products", content.ListProducts)
		api.GET("/products/:id", content.GetProduct)

		api.POST("/articles", content.CreateArticle)
		api.GET("/articles", content.ListArticles)
		api.GET("/articles/:slug", content.GetArticle)

		api.POST("/collections", content.CreateCollection)
		api.GET("/collections", content.ListCollections)
		api.GET("/collections/:slug", content.GetCollection)

		api.POST("/links", links.CreateLink)
		api.GET("/links/:slug", links.GetLink)

		api.POST("/subscribe", content.Subscribe)

		api.POST("/wishlist", content.AddWishlistItem)
		api.GET("/wishlist", content.ListWishlist)
		api.GET("/wishlist/:id", content.GetWishlistItem)
		api.DELETE("/wishlist/:id", content.DeleteWishlistItem)

		api.GET("/search", content.Search)
		api.GET("/analytics/summary", system.AnalyticsSummary)
	}
}
