package service

import (
	"Showreel/internal/model"
	"Showreel/internal/repository"
	"context"
)

type LookupService interface {
	ListRows(ctx context.Context, kind string) ([]*model.LookupRow, error)
	CreateRow(ctx context.Context, kind string, name string) (*model.LookupRow, error)
	DeleteRow(ctx context.Context, kind string, id uint64) error
}

type lookupServiceImpl struct {
	lookupRepo repository.LookupRepo
}

func NewLookupService(lookupRepo repository.LookupRepo) LookupService {
	return &lookupServiceImpl{lookupRepo: lookupRepo}
}

// tableFor 路由参数必须在白名单内，防止任意表名注入
func tableFor(kind string) (string, error) {
	table, ok := model.LookupTables[kind]
	if !ok {
		return "", ErrLookupKindInvalid
	}
	return table, nil
}

func (s *lookupServiceImpl) ListRows(ctx context.Context, kind string) ([]*model.LookupRow, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	return s.lookupRepo.ListRows(ctx, table)
}

func (s *lookupServiceImpl) CreateRow(ctx context.Context, kind string, name string) (*model.LookupRow, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	return s.lookupRepo.CreateRow(ctx, table, name)
}

func (s *lookupServiceImpl) DeleteRow(ctx context.Context, kind string, id uint64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	return s.lookupRepo.DeleteRow(ctx, table, id)
}
