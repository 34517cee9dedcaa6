package service

import (
	"Showreel/internal/pkg/storage"
	"context"
)

// ObjectStorage 对象存储操作抽象，便于单元测试替换
type ObjectStorage interface {
	PresignUpload(ctx context.Context, fileName, fileType, destination string) (string, string, error)
	ResolveReadURLs(ctx context.Context, objectPaths []string) map[string]*string
	RemoveObject(ctx context.Context, objectPath string) error
	RemovePrefix(ctx context.Context, prefix string) error
}

type storageGatewayImpl struct{}

// NewStorageGateway 基于全局存储客户端的默认实现
func NewStorageGateway() ObjectStorage {
	return &storageGatewayImpl{}
}

func (s *storageGatewayImpl) PresignUpload(ctx context.Context, fileName, fileType, destination string) (string, string, error) {
	return storage.PresignUpload(ctx, fileName, fileType, destination)
}

func (s *storageGatewayImpl) ResolveReadURLs(ctx context.Context, objectPaths []string) map[string]*string {
	return storage.ResolveReadURLs(ctx, objectPaths)
}

func (s *storageGatewayImpl) RemoveObject(ctx context.Context, objectPath string) error {
	return storage.RemoveObject(ctx, objectPath)
}

func (s *storageGatewayImpl) RemovePrefix(ctx context.Context, prefix string) error {
	return storage.RemovePrefix(ctx, prefix)
}
