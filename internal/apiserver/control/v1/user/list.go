package user

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
)

// List 返回全部用户。
func (u *UserController) List(c *gin.Context) {
	users, err := u.srv.Users().List(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, users)
}
