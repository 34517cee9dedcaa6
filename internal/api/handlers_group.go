package api

import "Showreel/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	StorageHandler    *handler.StorageHandler
	ReelHandler       *handler.ReelHandler
	MediaItemHandler  *handler.MediaItemHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	ArtistHandler     *handler.ArtistHandler
	LookupHandler     *handler.LookupHandler
	FeaturePdfHandler *handler.FeaturePdfHandler
}
