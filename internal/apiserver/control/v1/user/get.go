package user

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
)

// Get 按 id 查询用户，不存在时返回 404。
func (u *UserController) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	user, err := u.srv.Users().Get(c, id)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, user)
}
