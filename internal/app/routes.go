package app

import (
	"pairbook/internal/auth"
	"pairbook/internal/cache"
	"pairbook/internal/config"
	"pairbook/internal/handlers"
	"pairbook/internal/repo"
	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	sessionStore := auth.NewStore(rdb, cfg.Session.TTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc, sessionStore.TTL())
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireSession(sessionStore))
	protected.GET("/user", authHandler.Me)

	partnerHandler := handlers.NewPartnerHandler(userSvc)
	protected.GET("/partner", partnerHandler.Get)
	protected.PUT("/partner", partnerHandler.Set)

	taskRepo := repo.NewPGTaskRepo(db)
	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(taskRepo, userRepo, taskCache)
	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc))

	bucketSvc := service.NewBucketService(repo.NewPGBucketRepo(db))
	registerBucketRoutes(protected, handlers.NewBucketHandler(bucketSvc))

	couponSvc := service.NewCouponService(repo.NewPGCouponRepo(db))
	registerCouponRoutes(protected, handlers.NewCouponHandler(couponSvc))

	hotReasonSvc := service.NewHotReasonService(repo.NewPGHotReasonRepo(db))
	registerHotReasonRoutes(protected, handlers.NewHotReasonHandler(hotReasonSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Pairbook API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.GET("/tasks", h.List)
	api.POST("/tasks", h.Create)
	api.PATCH("/tasks/:id/complete", h.Complete)
	api.DELETE("/tasks/:id", h.Delete)
}

func registerBucketRoutes(api *gin.RouterGroup, h *handlers.BucketHandler) {
	api.GET("/bucket-list", h.List)
	api.POST("/bucket-list", h.Create)
	api.PATCH("/bucket-list/:id/complete", h.Complete)
	api.DELETE("/bucket-list/:id", h.Delete)
}

func registerCouponRoutes(api *gin.RouterGroup, h *handlers.CouponHandler) {
	api.GET("/coupons", h.ListCreated)
	api.GET("/coupons/inventory", h.ListInventory)
	api.POST("/coupons", h.Create)
	api.POST("/coupons/:id/send", h.Send)
	api.DELETE("/coupons/:id", h.Delete)
}

func registerHotReasonRoutes(api *gin.RouterGroup, h *handlers.HotReasonHandler) {
	api.GET("/hot-reasons", h.List)
	api.POST("/hot-reasons", h.Create)
}
