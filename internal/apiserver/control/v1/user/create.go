package user

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
	"github.com/maxiaolu1981/cretem/usercrud/pkg/log"
)

// Create 创建用户，成功返回 200 和新记录。
func (u *UserController) Create(c *gin.Context) {
	log.L(c).Debugf("user create function called.")

	r, err := bindUserRequest(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	user, err := u.srv.Users().Create(c, *r.Name)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, user)
}
