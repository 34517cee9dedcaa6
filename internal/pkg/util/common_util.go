package util

import (
	"Showreel/internal/pkg/consts"
	"math/rand/v2"
	"path"
	"strings"
)

// GenerateShortLink 生成短链标识，可能撞车，由调用方查重重试
func GenerateShortLink() string {
	b := make([]byte, consts.ShortLinkLength)
	for i := range b {
		b[i] = consts.ShortLinkCharset[rand.IntN(len(consts.ShortLinkCharset))]
	}
	return string(b)
}

// PickFolder 根据上传目标或 MIME 类型决定存储目录
func PickFolder(destination, fileType string) string {
	switch destination {
	case consts.FolderArtists:
		return consts.FolderArtists
	case consts.FolderFeaturePdf:
		return consts.FolderFeaturePdf
	case consts.FolderVideos:
		return consts.FolderVideos
	case consts.FolderPreviews:
		return consts.FolderPreviews
	}
	if strings.HasPrefix(fileType, consts.MimePrefixVideo+"/") {
		return consts.FolderVideos
	}
	return consts.FolderPreviews
}

// BaseName 去掉目录与扩展名，转码目录按它分组
func BaseName(objectPath string) string {
	name := path.Base(objectPath)
	return strings.TrimSuffix(name, path.Ext(name))
}

// SplitNames 拆分逗号连接的名字列表，去除空白项
func SplitNames(joined string) []string {
	var names []string
	for _, n := range strings.Split(joined, ",") {
		n = strings.TrimSpace(n)
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
