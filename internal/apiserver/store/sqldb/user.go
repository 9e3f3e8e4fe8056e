package sqldb

import (
	"context"
	"math"

	"github.com/marmotedu/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
)

type users struct {
	db *gorm.DB
}

var _ store.UserStore = (*users)(nil)

func newUsers(ds *datastore) *users {
	return &users{db: ds.db}
}

// List 按 id 升序返回全部用户。
func (u *users) List(ctx context.Context) ([]*v1.User, error) {
	list := make([]*v1.User, 0)
	if err := u.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, classify(err, "list users")
	}

	return list, nil
}

func (u *users) Get(ctx context.Context, id uint64) (*v1.User, error) {
	user, err := findByID(u.db.WithContext(ctx), id, false)
	if err != nil {
		return nil, classify(err, "get user %d", id)
	}

	return user, nil
}

// Create 插入后 gorm 会把自增 id 回填到 user.ID。
func (u *users) Create(ctx context.Context, name string) (*v1.User, error) {
	user := &v1.User{Name: name}
	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, classify(err, "create user")
	}

	return user, nil
}

// Update 在同一个事务里先查后改，记录不存在时不发出 UPDATE。
func (u *users) Update(ctx context.Context, id uint64, name string) (*v1.User, error) {
	var updated *v1.User
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findByID(tx, id, true)
		if err != nil || user == nil {
			return err
		}

		if err := tx.Model(user).Update("name", name).Error; err != nil {
			return err
		}
		user.Name = name
		updated = user

		return nil
	})
	if err != nil {
		return nil, classify(err, "update user %d", id)
	}

	return updated, nil
}

// Delete 在同一个事务里先查后删，记录不存在时返回 false。
func (u *users) Delete(ctx context.Context, id uint64) (bool, error) {
	var deleted bool
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := findByID(tx, id, true)
		if err != nil || user == nil {
			return err
		}

		if err := tx.Delete(user).Error; err != nil {
			return err
		}
		deleted = true

		return nil
	})
	if err != nil {
		return false, classify(err, "delete user %d", id)
	}

	return deleted, nil
}

// findByID 不存在时返回 (nil, nil)；lock 为 true 时加行锁（sqlite 忽略）。
func findByID(db *gorm.DB, id uint64, lock bool) (*v1.User, error) {
	// 自增主键不会超过 MaxInt64，database/sql 也不接受最高位为 1 的 uint64 参数。
	if id > math.MaxInt64 {
		return nil, nil
	}

	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	user := &v1.User{}
	err := db.Where("id = ?", id).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
