// Package store 定义用户存储的抽象，具体后端各自负责构造。
package store

import (
	"context"

	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
)

// Factory 存储工厂，由启动流程或测试创建后注入到业务层。
type Factory interface {
	Users() UserStore
	Close() error
}

// UserStore 用户存储的五个操作。
//
// 记录不存在不是错误：Get/Update 返回 (nil, nil)，Delete 返回 false。
// error 只用于后端故障，带 code.ErrStoreUnavailable 或 code.ErrDatabase。
type UserStore interface {
	// List 返回全部用户，内存实现按插入顺序，数据库实现按 id 升序。
	List(ctx context.Context) ([]*v1.User, error)
	Get(ctx context.Context, id uint64) (*v1.User, error)
	// Create 分配一个从未使用过的 id。
	Create(ctx context.Context, name string) (*v1.User, error)
	Update(ctx context.Context, id uint64, name string) (*v1.User, error)
	// Delete 每个存在的 id 只会返回一次 true。
	Delete(ctx context.Context, id uint64) (bool, error)
}
