package wire

import (
	"Showreel/internal/api"
	"Showreel/internal/api/config"
	"Showreel/internal/api/handler"
	"Showreel/internal/job"
	"Showreel/internal/pkg/cron"
	"Showreel/internal/repository"
	"Showreel/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	mediaItemRepo := repository.NewMediaItemRepository(db)
	reelRepo := repository.NewReelRepository(db)
	reelViewRepo := repository.NewReelViewRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	featurePdfRepo := repository.NewFeaturePdfRepository(db)

	objectStorage := service.NewStorageGateway()

	reelService := service.NewReelService(reelRepo, reelViewRepo, artistRepo)
	mediaItemService := service.NewMediaItemService(mediaItemRepo, reelRepo, objectStorage)
	analyticsService := service.NewAnalyticsService(reelViewRepo, reelRepo, mediaItemRepo)
	artistService := service.NewArtistService(artistRepo, objectStorage)
	lookupService := service.NewLookupService(lookupRepo)
	featurePdfService := service.NewFeaturePdfService(featurePdfRepo, objectStorage)

	handlers := &api.HandlersGroup{
		StorageHandler:    handler.NewStorageHandler(objectStorage),
		ReelHandler:       handler.NewReelHandler(reelService),
		MediaItemHandler:  handler.NewMediaItemHandler(mediaItemService),
		AnalyticsHandler:  handler.NewAnalyticsHandler(analyticsService),
		ArtistHandler:     handler.NewArtistHandler(artistService),
		LookupHandler:     handler.NewLookupHandler(lookupService),
		FeaturePdfHandler: handler.NewFeaturePdfHandler(featurePdfService),
	}

	router := api.SetupRouter(handlers)

	sweepJob := job.NewStorageSweepJob(mediaItemRepo, artistRepo, featurePdfRepo)
	cronMgr := cron.NewCronManager(sweepJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
