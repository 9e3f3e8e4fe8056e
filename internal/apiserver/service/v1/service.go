package v1

import "github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"

// Service 业务层入口。
type Service interface {
	Users() UserSrv
}

type service struct {
	store store.Factory
}

// NewService 由调用方注入存储工厂。
func NewService(store store.Factory) Service {
	return &service{
		store: store,
	}
}

func (s *service) Users() UserSrv {
	return newUsers(s)
}
