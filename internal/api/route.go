package api

import (
	"Showreel/internal/api/middleware"
	"Showreel/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		storageGroup := apiGroup.Group("/storage")
		{
			// 公开站点需要为 media_items 中的路径换取读链接，无需登录
			storageGroup.POST("/read-urls", group.StorageHandler.CreateReadURLs)

			authGroup := storageGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/upload-url", group.StorageHandler.CreateUploadURL)
			}
		}

		reelGroup := apiGroup.Group("/reels")
		{
			// 无需登录即可访问的接口
			reelGroup.GET("/public/:short_link", group.ReelHandler.GetPublicReel)
			reelGroup.POST("/log-event", group.AnalyticsHandler.LogEvent)

			authGroup := reelGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ReelHandler.CreateReel)
				authGroup.GET("", group.ReelHandler.ListReels)
				authGroup.PATCH("/:reel_id", group.ReelHandler.UpdateReel)
				authGroup.DELETE("/:reel_id", group.ReelHandler.DeleteReel)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.Use(middleware.AuthMiddleware())
			{
				analyticsGroup.GET("/views-over-time", group.AnalyticsHandler.ViewsOverTime)
				analyticsGroup.GET("/trending-media", group.AnalyticsHandler.TrendingMedia)
				analyticsGroup.GET("/recent-activity", group.AnalyticsHandler.RecentActivity)
			}
		}

		mediaItemGroup := apiGroup.Group("/media-items")
		{
			mediaItemGroup.Use(middleware.AuthMiddleware())
			{
				mediaItemGroup.POST("", group.MediaItemHandler.CreateMediaItem)
				mediaItemGroup.GET("", group.MediaItemHandler.ListMediaItems)
				mediaItemGroup.GET("/:media_item_id", group.MediaItemHandler.GetMediaItem)
				mediaItemGroup.PATCH("/:media_item_id", group.MediaItemHandler.UpdateMediaItem)
				mediaItemGroup.DELETE("/:media_item_id", group.MediaItemHandler.DeleteMediaItem)
			}
		}

		artistGroup := apiGroup.Group("/artists")
		{
			authGroup := artistGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/details-by-names", group.ArtistHandler.GetDetailsByNames)
				authGroup.POST("", group.ArtistHandler.CreateArtist)
				authGroup.GET("", group.ArtistHandler.ListArtists)
				authGroup.PATCH("/:artist_id", group.ArtistHandler.UpdateArtist)
				authGroup.DELETE("/:artist_id", group.ArtistHandler.DeleteArtist)
			}
		}

		lookupGroup := apiGroup.Group("/lookups")
		{
			lookupGroup.Use(middleware.AuthMiddleware())
			{
				lookupGroup.GET("/:kind", group.LookupHandler.ListRows)
				lookupGroup.POST("/:kind", group.LookupHandler.CreateRow)
				lookupGroup.DELETE("/:kind/:id", group.LookupHandler.DeleteRow)
			}
		}

		pdfGroup := apiGroup.Group("/feature-pdf")
		{
			// 公开站点校验口令并上报下载统计
			pdfGroup.POST("/password/verify", group.FeaturePdfHandler.VerifyPassword)
			pdfGroup.GET("/file", group.FeaturePdfHandler.GetCurrentFile)
			pdfGroup.POST("/stats", group.FeaturePdfHandler.LogStat)

			authGroup := pdfGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/password", group.FeaturePdfHandler.SetPassword)
				authGroup.POST("/file", group.FeaturePdfHandler.SetFile)
			}
		}
	}

	return r
}
