package user

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/marmotedu/errors"

	srvv1 "github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/service/v1"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
)

// UserController 用户相关的 HTTP 处理器。
type UserController struct {
	srv srvv1.Service
}

// NewUserController 存储由调用方注入，测试时可替换为内存实现。
func NewUserController(store store.Factory) *UserController {
	return &UserController{
		srv: srvv1.NewService(store),
	}
}

// UserRequest 创建和更新共用的请求体。
type UserRequest struct {
	Name *string `json:"name" binding:"required"`
}

// parseID 负数 id 解析为 0：存储分配的 id 从 1 开始，0 总是不存在。
func parseID(c *gin.Context) (uint64, error) {
	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return id, nil
	}

	if _, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return 0, nil
	}

	return 0, errors.WithCode(code.ErrValidation, "invalid user id %q", raw)
}

func bindUserRequest(c *gin.Context) (*UserRequest, error) {
	var r UserRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, errors.WithCode(code.ErrValidation, "%s", verrs.Error())
		}

		return nil, errors.WithCode(code.ErrBind, "%s", err.Error())
	}

	return &r, nil
}
