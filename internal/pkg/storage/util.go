package storage

import (
	"Showreel/internal/pkg/consts"
	"Showreel/internal/pkg/redis"
	"Showreel/internal/pkg/util"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

const (
	// UploadURLTTL 上传签名有效期
	UploadURLTTL = 15 * time.Minute
	// ReadURLTTL 读取签名有效期
	ReadURLTTL = 10 * time.Minute
	// readURLCacheTTL 缓存比签名提前一分钟失效，避免下发将要过期的链接
	readURLCacheTTL = ReadURLTTL - time.Minute
)

// BuildObjectPath 生成全局唯一的对象路径
func BuildObjectPath(folder, fileName string) string {
	return fmt.Sprintf("%s/%s_%s", folder, uuid.NewString(), fileName)
}

// PresignUpload 生成限时、锁定 Content-Type 的上传链接
func PresignUpload(ctx context.Context, fileName, fileType, destination string) (string, string, error) {
	if Client == nil {
		return "", "", errors.New("storage client is not initialized")
	}

	folder := util.PickFolder(destination, fileType)
	objectPath := BuildObjectPath(folder, fileName)

	headers := http.Header{}
	headers.Set("Content-Type", fileType)

	signedURL, err := Client.PresignHeader(ctx, http.MethodPut, Bucket, objectPath, UploadURLTTL, url.Values{}, headers)
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload url: %w", err)
	}

	return signedURL.String(), objectPath, nil
}

// PresignRead 生成限时读取链接，对象不存在时返回错误
func PresignRead(ctx context.Context, objectPath string) (string, error) {
	if Client == nil {
		return "", errors.New("storage client is not initialized")
	}

	if cached, err := redis.GetValue(ctx, consts.StorageReadURLKey+objectPath); err == nil && cached != "" {
		return cached, nil
	}

	if _, err := Client.StatObject(ctx, Bucket, objectPath, minio.StatObjectOptions{}); err != nil {
		return "", fmt.Errorf("failed to stat object %q: %w", objectPath, err)
	}

	signedURL, err := Client.PresignedGetObject(ctx, Bucket, objectPath, ReadURLTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign read url: %w", err)
	}

	res := signedURL.String()
	_ = redis.SetWithExpiration(ctx, consts.StorageReadURLKey+objectPath, res, readURLCacheTTL)
	return res, nil
}

// ResolveReadURLs 批量解析读取链接，单个失败记为 nil，不影响整批
func ResolveReadURLs(ctx context.Context, objectPaths []string) map[string]*string {
	res := make(map[string]*string, len(objectPaths))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, p := range objectPaths {
		objectPath := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			signedURL, err := PresignRead(ctx, objectPath)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.WarnContext(ctx, "failed to resolve read url", "path", objectPath, "err", err)
				res[objectPath] = nil
				return
			}
			res[objectPath] = &signedURL
		}()
	}

	wg.Wait()
	return res
}

// RemoveObject 删除单个对象，对象不存在视为成功
func RemoveObject(ctx context.Context, objectPath string) error {
	if Client == nil {
		return errors.New("storage client is not initialized")
	}

	err := Client.RemoveObject(ctx, Bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object %q: %w", objectPath, err)
	}

	_ = redis.DeleteKey(ctx, consts.StorageReadURLKey+objectPath)
	return nil
}

// RemovePrefix 删除某前缀下的全部对象，尽力而为
func RemovePrefix(ctx context.Context, prefix string) error {
	if Client == nil {
		return errors.New("storage client is not initialized")
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var firstErr error
	for object := range Client.ListObjects(ctx, Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			if firstErr == nil {
				firstErr = object.Err
			}
			continue
		}
		if err := RemoveObject(ctx, object.Key); err != nil {
			log.WarnContext(ctx, "failed to delete object under prefix", "key", object.Key, "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// ListPaths 列出某前缀下全部对象路径及最后修改时间
func ListPaths(ctx context.Context, prefix string) (map[string]time.Time, error) {
	if Client == nil {
		return nil, errors.New("storage client is not initialized")
	}

	res := make(map[string]time.Time)
	for object := range Client.ListObjects(ctx, Bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return nil, object.Err
		}
		res[object.Key] = object.LastModified
	}
	return res, nil
}
