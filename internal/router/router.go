package router

import (
	"github.com/gin-gonic/gin"
	"github.com/msolera/catalog-backend/config"
	"github.com/msolera/catalog-backend/internal/app/controller"
	"github.com/msolera/catalog-backend/internal/middleware"
)

type Router struct {
	authController    *controller.AuthController
	productController *controller.ProductController
	optionController  *controller.OptionController
	offerController   *controller.OfferController
	uploadController  *controller.UploadController
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	optionController *controller.OptionController,
	offerController *controller.OfferController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		productController: productController,
		optionController:  optionController,
		offerController:   offerController,
		uploadController:  uploadController,
		authMiddleware:    authMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.LocaleMiddleware(r.config.Locale.Default))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Catalog API is running",
		})
	})

	admin := r.authMiddleware.RequireRole("admin")

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/filtered", r.productController.ListFilteredProducts)
			products.GET("/export",
				r.authMiddleware.Authenticate(), admin,
				r.productController.ExportCatalog,
			)
			products.GET("/:id", r.productController.GetProductByID)

			products.POST("",
				r.authMiddleware.Authenticate(), admin,
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.productController.UpdateProduct,
			)
			products.DELETE("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.productController.DeleteProduct,
			)
			products.PUT("/:id/pack-products",
				r.authMiddleware.Authenticate(), admin,
				r.productController.SetPackItems,
			)
		}

		options := v1.Group("/options")
		{
			options.GET("", r.optionController.ListOptions)
			options.GET("/:id", r.optionController.GetOptionByID)
			options.POST("",
				r.authMiddleware.Authenticate(), admin,
				r.optionController.CreateOption,
			)
			options.PUT("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.optionController.UpdateOption,
			)
			options.DELETE("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.optionController.DeleteOption,
			)
		}

		offers := v1.Group("/offers")
		{
			offers.GET("", r.offerController.ListOffers)
			offers.GET("/:id", r.offerController.GetOfferByID)
			offers.POST("",
				r.authMiddleware.Authenticate(), admin,
				r.offerController.CreateOffer,
			)
			offers.PUT("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.offerController.UpdateOffer,
			)
			offers.DELETE("/:id",
				r.authMiddleware.Authenticate(), admin,
				r.offerController.DeleteOffer,
			)
		}

		uploads := v1.Group("/uploads")
		uploads.Use(r.authMiddleware.Authenticate(), admin)
		{
			uploads.POST("/presign", r.uploadController.Presign)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept-Language, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
