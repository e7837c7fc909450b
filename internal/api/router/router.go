package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/config"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/api/handler"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/api/middleware"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/jwt"
	"github.com/IT22102546/ArmiGo-Research-sub009/pkg/redis"
)

// Setup builds and returns the Gin engine with all routes mounted.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth module (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// reference data (public, read-only)
		reference := v1.Group("/reference")
		{
			reference.GET("/zones", h.Reference.ListZones)
			reference.GET("/districts", h.Reference.ListDistricts)
			reference.GET("/subjects", h.Reference.ListSubjects)
			reference.GET("/mediums", h.Reference.ListMediums)
		}

		// register browsing works for anonymous viewers too; the
		// privacy projection collapses to the public stage without a
		// token
		browse := v1.Group("")
		browse.Use(middleware.OptionalJWTAuth(jwtMgr, rdb))
		{
			browse.GET("/transfers", h.Transfer.Browse)
			browse.GET("/transfers/:id", h.Transfer.Get)
		}

		// authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// auth module (authenticated)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// transfer request lifecycle
			transfers := authorized.Group("/transfers")
			{
				transfers.POST("", h.Transfer.Create)
				transfers.GET("/my", h.Transfer.My)
				transfers.GET("/matches", h.Transfer.Matches)
				transfers.POST("/:id/accept", h.Transfer.Accept)
				transfers.PUT("/:id", h.Transfer.Edit)
				transfers.DELETE("/:id", h.Transfer.Cancel)
				transfers.POST("/:id/pause", h.Transfer.Pause)
				transfers.POST("/:id/resume", h.Transfer.Resume)
				transfers.POST("/:id/verify", middleware.RoleAuth("admin"), h.Transfer.Verify)
				transfers.POST("/:id/complete", middleware.RoleAuth("admin"), h.Transfer.Complete)

				// asymmetric interest workflow
				transfers.POST("/:id/interests", h.Interest.Send)
				transfers.GET("/:id/interests", h.Interest.Received)

				// post-match chat
				transfers.GET("/:id/messages", h.Message.List)
				transfers.POST("/:id/messages", h.Message.Send)
			}

			interests := authorized.Group("/interests")
			{
				interests.GET("/sent", h.Interest.Sent)
				interests.POST("/:id/accept", h.Interest.Accept)
				interests.POST("/:id/reject", h.Interest.Reject)
			}

			messages := authorized.Group("/messages")
			{
				messages.PUT("/:id/read", h.Message.MarkRead)
				messages.GET("/unread-count", h.Message.UnreadCount)
			}

			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread-count", h.Notification.UnreadCount)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
				notifications.POST("/read-all", h.Notification.MarkAllRead)
			}

			// admin console
			admin := authorized.Group("/admin", middleware.RoleAuth("admin"))
			{
				admin.GET("/transfers", h.Transfer.AdminList)
				admin.GET("/transfers/stats", h.Transfer.Stats)
				admin.GET("/transfers/export", h.Export.ExportRegister)
				admin.POST("/transfers/:id/verify", h.Transfer.VerifyStrict)
				admin.PUT("/transfers/:id/status", h.Transfer.AdminUpdateStatus)
			}
		}
	}

	return r
}
