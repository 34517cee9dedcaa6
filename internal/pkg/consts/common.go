package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// 存储桶内的目录划分
const (
	FolderArtists    = "artists"
	FolderFeaturePdf = "feature_pdf"
	FolderVideos     = "videos"
	FolderPreviews   = "previews"
	FolderTranscoded = "transcoded_videos"
)

const (
	ReelStatusActive   = "Active"
	ReelStatusInactive = "Inactive"
)

// 事件类型，来自播放器埋点
const (
	EventTypeView            = "view"
	EventTypeMediaCompletion = "media_completion"
	EventTypeCompletion      = "completion"
	EventTypeSessionDuration = "session_duration"
)

const (
	ShortLinkLength  = 5
	ShortLinkCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// 艺术家无照片时的兜底图
const DefaultDirectorPhotoPath = "artists/default_director.jpg"
