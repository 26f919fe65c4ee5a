package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/pkg/mailer"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, m mailer.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo)
	statusSvc := services.NewStatusService(db, orderRepo, m)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(productRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffCtrl := controllers.NewStaffOrderController(statusSvc, orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Catalog (public, read-only)
	r.GET("/product", productCtrl.List)
	r.GET("/product/:id", productCtrl.Detail)

	// Orders (owner only)
	o := r.Group("/order", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		o.GET("", orderCtrl.List)
		o.POST("", orderCtrl.Create)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id", orderCtrl.Update)
		o.DELETE("/:id", orderCtrl.Delete)
	}

	// Staff channel: the only surface that writes status.
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff"))
	{
		staff.PATCH("/order/:id/status", staffCtrl.UpdateStatus)
	}
}
