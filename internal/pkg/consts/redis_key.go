package consts

const (
	StorageReadURLKey     = "storage:read:url:"
	AnalyticsViewsKey     = "analytics:views:"
	AnalyticsTrendingKey  = "analytics:trending:"
	StorageSweepMarkerKey = "storage:sweep:last_run"
)
