package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrReelNotFound         = errors.New("作品集不存在")
	ErrReelInactive         = errors.New("作品集未启用")
	ErrMediaItemNotFound    = errors.New("媒体条目不存在")
	ErrArtistNotFound       = errors.New("艺术家不存在")
	ErrLookupKindInvalid    = errors.New("不支持的字典类型")
	ErrShortLinkExhausted   = errors.New("短链生成失败，请重试")
	ErrEventTypeInvalid     = errors.New("不支持的事件类型")
	ErrEventMediaRequired   = errors.New("完播事件缺少媒体条目")
	ErrEventDurationMissing = errors.New("时长事件缺少时长")
	ErrPdfPasswordNotSet    = errors.New("口令尚未设置")
	ErrPdfPasswordIncorrect = errors.New("口令错误")
	ErrPdfFileNotFound      = errors.New("文件尚未上传")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrReelNotFound:         NotFound,
	ErrReelInactive:         Forbidden,
	ErrMediaItemNotFound:    NotFound,
	ErrArtistNotFound:       NotFound,
	ErrLookupKindInvalid:    BadRequest,
	ErrShortLinkExhausted:   InternalServerError,
	ErrEventTypeInvalid:     BadRequest,
	ErrEventMediaRequired:   BadRequest,
	ErrEventDurationMissing: BadRequest,
	ErrPdfPasswordNotSet:    NotFound,
	ErrPdfPasswordIncorrect: Unauthorized,
	ErrPdfFileNotFound:      NotFound,
	UnExpectedError:         InternalServerError,
}
