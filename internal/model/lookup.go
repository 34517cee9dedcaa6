package model

import (
	"time"
)

// LookupRow 简单字典表的统一行结构，配合 db.Table(...) 使用
type LookupRow struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// 字典表表名
const (
	TableClients      = "clients"
	TableCelebrities  = "celebrities"
	TableContentTypes = "content_types"
	TableCategories   = "categories"
	TableCrafts       = "crafts"
)

// LookupTables 路由参数到表名的映射，同时充当白名单
var LookupTables = map[string]string{
	"clients":       TableClients,
	"celebrities":   TableCelebrities,
	"content-types": TableContentTypes,
	"categories":    TableCategories,
	"crafts":        TableCrafts,
}
