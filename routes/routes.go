package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yunseok-map/all-food-map/configs"
	"github.com/yunseok-map/all-food-map/controllers"
	"github.com/yunseok-map/all-food-map/middlewares"
	"github.com/yunseok-map/all-food-map/repository"
	"github.com/yunseok-map/all-food-map/services"
	"github.com/yunseok-map/all-food-map/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.EventHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	interRepo := repository.NewInteractionRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	dayRepo := repository.NewSpecialDayRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restCtrl := controllers.NewRestaurantController(restRepo, interRepo)
	interCtrl := controllers.NewInteractionController(interRepo, hub)
	reviewCtrl := controllers.NewReviewController(db, hub)
	commentCtrl := controllers.NewCommentController(commentRepo, hub)
	dayCtrl := controllers.NewSpecialDayController(dayRepo)
	recCtrl := controllers.NewRecommendController(restRepo,
		services.NewRecommendService(cfg.GeminiAPIKey, cfg.GeminiModel))

	// Auth
	r.POST("/auth/anonymous", authCtrl.Anonymous)

	// Reads; viewer identity fills in own-vote state when present
	read := r.Group("/", middlewares.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		read.GET("/restaurants", restCtrl.List)
		read.GET("/restaurants/draw", restCtrl.Draw)
		read.GET("/restaurants/:id", restCtrl.Detail)
		read.GET("/restaurants/:id/reviews", reviewCtrl.ListForRestaurant)
		read.GET("/reviews", reviewCtrl.ListAll)
		read.GET("/interactions", interCtrl.List)
		read.GET("/comments", commentCtrl.List)
		read.GET("/special-days/next", dayCtrl.Next)
	}

	r.POST("/recommendations", recCtrl.Recommend)

	// Writes require the anonymous session
	write := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		write.POST("/interactions/toggle", interCtrl.Toggle)
		write.POST("/reviews", reviewCtrl.Create)
		write.DELETE("/reviews/:id", reviewCtrl.Delete)
		write.POST("/comments", commentCtrl.Create)
		write.DELETE("/comments/:id", commentCtrl.Delete)
	}

	// Realtime change feed + presence
	r.GET("/ws/events", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
