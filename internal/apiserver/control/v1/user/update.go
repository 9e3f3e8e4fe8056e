package user

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
)

// Update 修改用户名称，id 不变。
func (u *UserController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	r, err := bindUserRequest(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	user, err := u.srv.Users().Update(c, id, *r.Name)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, user)
}
