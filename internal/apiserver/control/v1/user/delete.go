package user

import (
	"github.com/gin-gonic/gin"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
)

// Delete 删除用户，成功返回 {"Success": true}。
func (u *UserController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	if err := u.srv.Users().Delete(c, id); err != nil {
		core.WriteResponse(c, err, nil)
		return
	}

	core.WriteResponse(c, nil, gin.H{"Success": true})
}
