// Package sqldb 基于 gorm 的用户存储，支持 sqlite 和 mysql。
package sqldb

import (
	"fmt"
	"sync"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/db"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Users() store.UserStore {
	return newUsers(ds)
}

func (ds *datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	return sqlDB.Close()
}

var (
	sqlFactory store.Factory
	once       sync.Once
)

// GetFactoryOr 第一次调用时按 opts 创建全局存储工厂，之后直接返回已创建的实例。
func GetFactoryOr(opts *db.Options) (store.Factory, error) {
	if opts == nil && sqlFactory == nil {
		return nil, fmt.Errorf("failed to get sql store factory")
	}

	var err error
	once.Do(func() {
		sqlFactory, err = New(opts)
	})

	if sqlFactory == nil || err != nil {
		return nil, fmt.Errorf("failed to get sql store factory, sqlFactory: %+v, error: %w", sqlFactory, err)
	}

	return sqlFactory, nil
}

// New 打开数据库、建表，返回独立的存储工厂。
func New(opts *db.Options) (store.Factory, error) {
	dbIns, err := db.New(opts)
	if err != nil {
		return nil, classify(err, "open %s database", opts.Driver)
	}

	if err := migrateDatabase(dbIns); err != nil {
		return nil, classify(err, "migrate users table")
	}
	log.Infof("数据库表 %s 已就绪", v1.User{}.TableName())

	return &datastore{db: dbIns}, nil
}

func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(&v1.User{})
}
