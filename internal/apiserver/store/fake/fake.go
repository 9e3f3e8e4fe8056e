// Package fake 内存版用户存储，用于测试。
package fake

import (
	"context"
	"sync"

	"github.com/jinzhu/copier"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
)

type datastore struct {
	users *users
}

func (ds *datastore) Users() store.UserStore {
	return ds.users
}

func (ds *datastore) Close() error {
	return nil
}

// New 返回一个空的内存存储，id 从 1 开始。
func New() store.Factory {
	return &datastore{users: newUsers()}
}

type users struct {
	mu     sync.RWMutex
	data   map[uint64]*v1.User
	order  []uint64
	nextID uint64
}

var _ store.UserStore = (*users)(nil)

func newUsers() *users {
	return &users{
		data:   make(map[uint64]*v1.User),
		nextID: 1,
	}
}

func (u *users) List(ctx context.Context) ([]*v1.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	list := make([]*v1.User, 0, len(u.order))
	for _, id := range u.order {
		other, err := deepCopy(u.data[id])
		if err != nil {
			return nil, err
		}
		list = append(list, other)
	}

	return list, nil
}

func (u *users) Get(ctx context.Context, id uint64) (*v1.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.data[id]
	if !ok {
		return nil, nil
	}

	return deepCopy(user)
}

func (u *users) Create(ctx context.Context, name string) (*v1.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user := &v1.User{ID: u.nextID, Name: name}
	u.data[user.ID] = user
	u.order = append(u.order, user.ID)
	u.nextID++

	return deepCopy(user)
}

func (u *users) Update(ctx context.Context, id uint64, name string) (*v1.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok := u.data[id]
	if !ok {
		return nil, nil
	}
	user.Name = name

	return deepCopy(user)
}

func (u *users) Delete(ctx context.Context, id uint64) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.data[id]; !ok {
		return false, nil
	}
	delete(u.data, id)

	for i, v := range u.order {
		if v == id {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}

	return true, nil
}

func deepCopy(user *v1.User) (*v1.User, error) {
	other := &v1.User{}
	if err := copier.Copy(other, user); err != nil {
		return nil, err
	}

	return other, nil
}
