package router

import (
	"github.com/XDazaiX/La-Habana-Kitchen/internal/handlers"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/insights"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/middleware"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Router(store *service.Storefront, metrics *insights.Client, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
	}))

	storefront := handlers.NewStorefrontHandler(store, log)
	insightsHandler := handlers.NewInsightsHandler(metrics)

	api := r.Group("/api/v1", middleware.Session())
	{
		api.GET("/catalog", storefront.Catalog)
		api.GET("/basket", storefront.Basket)
		api.POST("/basket/items", storefront.UpdateItem)
		api.GET("/recommendations", storefront.Recommendations)

		api.POST("/checkout/open", storefront.OpenCheckout)
		api.POST("/checkout/details", storefront.SubmitDetails)
		api.POST("/checkout/payment", storefront.SelectPayment)
		api.POST("/checkout/confirm", storefront.Confirm)
		api.POST("/checkout/close", storefront.CloseCheckout)

		api.GET("/insights", insightsHandler.Get)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "ok",
			"sessions": store.SessionCount(),
		})
	})

	return r
}
