package v1

import (
	"context"
	"time"

	"github.com/marmotedu/errors"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/metrics"
	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// UserSrv 用户业务接口。每个方法只调用一次存储，记录不存在时返回 code.ErrUserNotFound。
type UserSrv interface {
	List(ctx context.Context) ([]*v1.User, error)
	Get(ctx context.Context, id uint64) (*v1.User, error)
	Create(ctx context.Context, name string) (*v1.User, error)
	Update(ctx context.Context, id uint64, name string) (*v1.User, error)
	Delete(ctx context.Context, id uint64) error
}

var _ UserSrv = &userService{}

type userService struct {
	store store.Factory
}

func newUsers(srv *service) *userService {
	return &userService{store: srv.store}
}

func (u *userService) List(ctx context.Context) ([]*v1.User, error) {
	begin := time.Now()
	users, err := u.store.Users().List(ctx)
	metrics.RecordStoreOperation("list", begin, true, err)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	log.L(ctx).Debugw("list users", "count", len(users))

	return users, nil
}

func (u *userService) Get(ctx context.Context, id uint64) (*v1.User, error) {
	begin := time.Now()
	user, err := u.store.Users().Get(ctx, id)
	metrics.RecordStoreOperation("get", begin, user != nil, err)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if user == nil {
		return nil, errors.WithCode(code.ErrUserNotFound, "user %d not found", id)
	}

	return user, nil
}

func (u *userService) Create(ctx context.Context, name string) (*v1.User, error) {
	begin := time.Now()
	user, err := u.store.Users().Create(ctx, name)
	metrics.RecordStoreOperation("create", begin, true, err)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	log.L(ctx).Infow("user created", "id", user.ID)

	return user, nil
}

func (u *userService) Update(ctx context.Context, id uint64, name string) (*v1.User, error) {
	begin := time.Now()
	user, err := u.store.Users().Update(ctx, id, name)
	metrics.RecordStoreOperation("update", begin, user != nil, err)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if user == nil {
		return nil, errors.WithCode(code.ErrUserNotFound, "user %d not found", id)
	}
	log.L(ctx).Infow("user updated", "id", id)

	return user, nil
}

func (u *userService) Delete(ctx context.Context, id uint64) error {
	begin := time.Now()
	deleted, err := u.store.Users().Delete(ctx, id)
	metrics.RecordStoreOperation("delete", begin, deleted, err)
	if err != nil {
		return wrapStoreError(err)
	}
	if !deleted {
		return errors.WithCode(code.ErrUserNotFound, "user %d not found", id)
	}
	log.L(ctx).Infow("user deleted", "id", id)

	return nil
}

// wrapStoreError 保留存储层已带的错误码，其余按数据库错误处理。
func wrapStoreError(err error) error {
	if errors.IsCode(err, code.ErrStoreUnavailable) || errors.IsCode(err, code.ErrDatabase) {
		return err
	}

	return errors.WithCode(code.ErrDatabase, "%s", err.Error())
}
